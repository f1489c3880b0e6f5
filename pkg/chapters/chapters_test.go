package chapters

import (
	"sort"
	"testing"
)

func TestSubjects_SortedAndComplete(t *testing.T) {
	subjects := Subjects()
	if len(subjects) != len(Catalog) {
		t.Fatalf("expected %d subjects, got %d", len(Catalog), len(subjects))
	}
	if !sort.StringsAreSorted(subjects) {
		t.Errorf("subjects not sorted: %v", subjects)
	}
}

func TestChaptersFor_KnownSubject(t *testing.T) {
	chapterList := ChaptersFor("Computer Science")
	if len(chapterList) == 0 {
		t.Fatal("expected chapters for Computer Science")
	}
	if chapterList[0] != "Programming Basics" {
		t.Errorf("syllabus order not preserved, got %q first", chapterList[0])
	}
}

func TestChaptersFor_UnknownSubject(t *testing.T) {
	if chapterList := ChaptersFor("Astronomy"); chapterList != nil {
		t.Errorf("expected nil for an unknown subject, got %v", chapterList)
	}
}

func TestClassify_KeywordMatch(t *testing.T) {
	got := Classify("Write a Python program to copy one file into another.", "Computer Science")
	if got != "Python Programming" {
		t.Errorf("expected Python Programming, got %q", got)
	}
}

func TestClassify_SyllabusOrderBreaksTies(t *testing.T) {
	// "structures" and "networking" both appear; Data Structures comes
	// first in the syllabus.
	got := Classify("Explain networking structures used in campus networks.", "Computer Science")
	if got != "Data Structures" {
		t.Errorf("expected Data Structures, got %q", got)
	}
}

func TestClassify_ShortTokensIgnored(t *testing.T) {
	// "and" appears in many chapter titles but is below the keyword
	// length cutoff.
	got := Classify("Compare this and that in two lines.", "Mathematics")
	if got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}
}

func TestClassify_UnknownSubject(t *testing.T) {
	if got := Classify("Explain beta decay in detail.", "Astronomy"); got != "" {
		t.Errorf("expected empty suggestion, got %q", got)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	got := Classify("STATE OHM'S LAW FOR CURRENT ELECTRICITY.", "Physics")
	if got == "" {
		t.Error("expected a suggestion for uppercase content")
	}
}
