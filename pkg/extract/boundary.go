package extract

import (
	"regexp"
	"strconv"
)

// BoundaryMatch is the result of recognizing a question-start line: the
// question index and whatever text follows the numbering.
type BoundaryMatch struct {
	Number int
	Rest   string
}

// boundaryMatcher recognizes one numbering convention. Matchers are tried
// in order and the first hit wins, so broader conventions must come last.
type boundaryMatcher func(line string) (BoundaryMatch, bool)

var (
	// "Q No. 1" with optional punctuation.
	qNoPattern = regexp.MustCompile(`(?i)^Q\.?\s*No\.?\s*(\d+)`)

	// "Q.1", "Q1)", "Q1:", "Q 1 ".
	qNumPattern = regexp.MustCompile(`(?i)^Q\.?\s*(\d+)[.\):\s]`)

	// "1." or "1)" at line start.
	numberedPattern = regexp.MustCompile(`^(\d+)[.\)]\s+`)

	// "1 What ..." — numbering with no punctuation, accepted only when an
	// uppercase letter follows, to avoid treating data in the question
	// body (e.g. "5 apples") as numbering.
	numberSpacePattern = regexp.MustCompile(`^(\d+)\s+([A-Z])`)

	// Chapter banks and simple papers are uniform enough for a narrower
	// two-shape subset.
	chapterBoundaryPattern = regexp.MustCompile(`^(?:Q\.?\s*)?(\d+)[.\)]\s*(.+)`)
	simpleBoundaryPattern  = regexp.MustCompile(`^(\d+)[.\)]\s*(.+)`)
)

func matchPrefixConvention(pattern *regexp.Regexp, line string) (BoundaryMatch, bool) {
	m := pattern.FindStringSubmatchIndex(line)
	if m == nil {
		return BoundaryMatch{}, false
	}
	number, err := strconv.Atoi(line[m[2]:m[3]])
	if err != nil {
		return BoundaryMatch{}, false
	}
	return BoundaryMatch{Number: number, Rest: CleanLine(line[m[1]:])}, true
}

func matchQNo(line string) (BoundaryMatch, bool) {
	return matchPrefixConvention(qNoPattern, line)
}

func matchQNum(line string) (BoundaryMatch, bool) {
	return matchPrefixConvention(qNumPattern, line)
}

func matchNumbered(line string) (BoundaryMatch, bool) {
	return matchPrefixConvention(numberedPattern, line)
}

func matchNumberSpace(line string) (BoundaryMatch, bool) {
	m := numberSpacePattern.FindStringSubmatchIndex(line)
	if m == nil {
		return BoundaryMatch{}, false
	}
	number, err := strconv.Atoi(line[m[2]:m[3]])
	if err != nil {
		return BoundaryMatch{}, false
	}
	// The uppercase letter belongs to the question text, not the numbering.
	return BoundaryMatch{Number: number, Rest: CleanLine(line[m[4]:])}, true
}

// universalBoundaryMatchers covers every numbering convention observed
// across question papers. Order matters: "Q No. 1" must be tried before
// "Q1", and punctuated numbering before the bare-number form.
var universalBoundaryMatchers = []boundaryMatcher{
	matchQNo,
	matchQNum,
	matchNumbered,
	matchNumberSpace,
}

// MatchBoundary reports whether a normalized line starts a new question
// under any of the universal numbering conventions.
func MatchBoundary(line string) (BoundaryMatch, bool) {
	for _, matcher := range universalBoundaryMatchers {
		if match, ok := matcher(line); ok {
			return match, true
		}
	}
	return BoundaryMatch{}, false
}

func matchNarrowBoundary(pattern *regexp.Regexp, line string) (BoundaryMatch, bool) {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return BoundaryMatch{}, false
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return BoundaryMatch{}, false
	}
	return BoundaryMatch{Number: number, Rest: m[2]}, true
}

// headerPattern matches section markers, instruction banners, and paper
// metadata lines that must never start or join a question body.
var headerPattern = regexp.MustCompile(`(?i)^(Section|General Instructions|Time Allowed|Maximum Marks|CLASS|COMPUTER SCIENCE|MARKING SCHEME|Q\s*No\s+Section)`)

// IsHeader reports whether a line belongs to the header/instruction
// denylist and should be skipped entirely.
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}
