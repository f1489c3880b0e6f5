package extract

import (
	"regexp"
	"strings"
)

// OptionMatch is the result of recognizing a lettered-option line.
type OptionMatch struct {
	// Letter is the option letter, normalized to uppercase.
	Letter string

	// Text is the option body following the letter.
	Text string
}

// optionLinePattern matches lettered options in the bracket and
// punctuation styles that appear in exam documents: "(a) text",
// "[B]. text", "c) text", "D text".
var optionLinePattern = regexp.MustCompile(`^[(\[]?([a-dA-D])[)\].\s]+(.+)`)

// MatchOption reports whether a normalized line is a lettered option.
// Callers consult it only while a question is open; a stray option line
// before any boundary is meaningless.
func MatchOption(line string) (OptionMatch, bool) {
	m := optionLinePattern.FindStringSubmatch(line)
	if m == nil {
		return OptionMatch{}, false
	}
	return OptionMatch{Letter: strings.ToUpper(m[1]), Text: m[2]}, true
}

// Format renders the option in the output form "<Letter>) <text>".
func (o OptionMatch) Format() string {
	return o.Letter + ") " + o.Text
}
