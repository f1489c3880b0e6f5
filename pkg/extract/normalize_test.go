package extract

import (
	"reflect"
	"testing"
)

func TestCleanLine_RemovesSlashPageMarker(t *testing.T) {
	result := CleanLine("What is a stack? Page: 3/12 Explain with example.")
	expected := "What is a stack? Explain with example."
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestCleanLine_RemovesPageOfMarker(t *testing.T) {
	result := CleanLine("Page 2 of 10 Define recursion.")
	if result != "Define recursion." {
		t.Errorf("page marker was not removed: %q", result)
	}
}

func TestCleanLine_CollapsesWhitespace(t *testing.T) {
	result := CleanLine("  What   is\ta  queue?  ")
	if result != "What is a queue?" {
		t.Errorf("whitespace was not collapsed: %q", result)
	}
}

func TestCleanLine_Idempotent(t *testing.T) {
	once := CleanLine("Page: 1/5   What  is   normalization?")
	twice := CleanLine(once)
	if once != twice {
		t.Errorf("cleaning is not idempotent: %q != %q", once, twice)
	}
}

func TestCleanLine_EmptyAfterCleaning(t *testing.T) {
	if result := CleanLine("  Page: 4/9  "); result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSplitLines_DropsEmptyLines(t *testing.T) {
	lines := SplitLines("1. First question here\n\n   \n2. Second question here")
	expected := []string{"1. First question here", "2. Second question here"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("expected %v, got %v", expected, lines)
	}
}

func TestSplitLines_PageMarkerBecomesLineBreak(t *testing.T) {
	lines := SplitLines("text before Page: 1/2 text after")
	expected := []string{"text before", "text after"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("expected %v, got %v", expected, lines)
	}
}
