package extract

import (
	"testing"
)

func TestMatchOption_ParenthesizedLowercase(t *testing.T) {
	option, ok := MatchOption("(a) a stack grows at one end")
	if !ok {
		t.Fatal("expected an option match")
	}
	if option.Letter != "A" {
		t.Errorf("letter should be normalized to uppercase, got %q", option.Letter)
	}
	if option.Text != "a stack grows at one end" {
		t.Errorf("unexpected option text: %q", option.Text)
	}
}

func TestMatchOption_BracketAndBareStyles(t *testing.T) {
	cases := map[string]string{
		"[B]. binary search": "B",
		"c) constant time":   "C",
		"D linear scan":      "D",
	}
	for line, letter := range cases {
		option, ok := MatchOption(line)
		if !ok {
			t.Errorf("expected a match for %q", line)
			continue
		}
		if option.Letter != letter {
			t.Errorf("%q: expected letter %s, got %s", line, letter, option.Letter)
		}
	}
}

func TestMatchOption_LettersBeyondDRejected(t *testing.T) {
	if _, ok := MatchOption("e) quicksort"); ok {
		t.Error("letters beyond D are not options")
	}
}

func TestMatchOption_WordsAreNotOptions(t *testing.T) {
	cases := []string{
		"Answer the following briefly",
		"Because the index resets",
	}
	for _, line := range cases {
		if _, ok := MatchOption(line); ok {
			t.Errorf("%q should not match as an option", line)
		}
	}
}

func TestOptionMatch_Format(t *testing.T) {
	option := OptionMatch{Letter: "B", Text: "a queue"}
	if formatted := option.Format(); formatted != "B) a queue" {
		t.Errorf("unexpected format: %q", formatted)
	}
}
