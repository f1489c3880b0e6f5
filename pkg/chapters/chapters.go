// Package chapters carries the board-syllabus subject catalog and a
// keyword heuristic for suggesting which chapter a question belongs to.
package chapters

import (
	"sort"
	"strings"
)

// Catalog maps each supported subject to its syllabus chapters, in
// syllabus order.
var Catalog = map[string][]string{
	"Mathematics": {
		"Real Numbers", "Polynomials", "Pair of Linear Equations", "Quadratic Equations",
		"Arithmetic Progressions", "Triangles", "Coordinate Geometry", "Trigonometry",
		"Circles", "Surface Areas and Volumes", "Statistics", "Probability",
	},
	"Science": {
		"Chemical Reactions", "Acids Bases and Salts", "Metals and Non-metals",
		"Carbon Compounds", "Life Processes", "Control and Coordination", "Reproduction",
		"Heredity", "Light", "Human Eye", "Electricity", "Magnetic Effects",
		"Sources of Energy", "Environment",
	},
	"Physics": {
		"Electric Charges and Fields", "Electrostatic Potential", "Current Electricity",
		"Moving Charges and Magnetism", "Magnetism and Matter", "Electromagnetic Induction",
		"Alternating Current", "Electromagnetic Waves", "Ray Optics", "Wave Optics",
		"Dual Nature of Radiation", "Atoms", "Nuclei", "Semiconductor Electronics",
	},
	"Chemistry": {
		"Solid State", "Solutions", "Electrochemistry", "Chemical Kinetics",
		"Surface Chemistry", "Isolation of Elements", "p-Block Elements",
		"d and f Block Elements", "Coordination Compounds", "Haloalkanes",
		"Alcohols Phenols Ethers", "Aldehydes Ketones", "Amines", "Biomolecules", "Polymers",
	},
	"Biology": {
		"Reproduction in Organisms", "Sexual Reproduction in Flowering Plants",
		"Human Reproduction", "Reproductive Health", "Inheritance and Variation",
		"Molecular Basis of Inheritance", "Evolution", "Human Health and Disease",
		"Microbes in Human Welfare", "Biotechnology Principles",
		"Biotechnology Applications", "Organisms and Populations", "Ecosystem", "Biodiversity",
	},
	"English": {
		"Reading Comprehension", "Writing Skills", "Grammar", "Literature", "Poetry", "Prose",
	},
	"Hindi": {
		"Gadya Khand", "Kavya Khand", "Lekhan", "Vyakaran",
	},
	"Social Science": {
		"India and Contemporary World", "Contemporary India", "Democratic Politics",
		"Understanding Economic Development",
	},
	"Computer Science": {
		"Programming Basics", "Data Structures", "Database Management", "Networking",
		"Python Programming", "File Handling",
	},
	"Accountancy": {
		"Accounting for Partnership", "Reconstitution of Partnership",
		"Dissolution of Partnership", "Accounting for Share Capital", "Issue of Debentures",
		"Financial Statements", "Cash Flow Statement", "Financial Statement Analysis",
	},
	"Business Studies": {
		"Nature and Purpose of Business", "Forms of Business Organisation",
		"Business Services", "Business Environment", "Planning", "Organising", "Staffing",
		"Directing", "Controlling", "Financial Management", "Marketing Management",
	},
	"Economics": {
		"Introduction to Economics", "Consumer Behaviour", "Producer Behaviour",
		"Market Types", "National Income", "Money and Banking", "Government Budget",
		"Balance of Payments",
	},
}

// Subjects returns the supported subject names, sorted.
func Subjects() []string {
	subjects := make([]string, 0, len(Catalog))
	for subject := range Catalog {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

// ChaptersFor returns the chapter list for a subject, or nil when the
// subject is not in the catalog.
func ChaptersFor(subject string) []string {
	return Catalog[subject]
}

// minKeywordLength filters out short stopword-like tokens ("and", "of")
// from chapter titles when matching.
const minKeywordLength = 4

// Classify suggests a chapter for question content by keyword overlap
// with the subject's chapter titles. It returns the first chapter (in
// syllabus order) sharing a keyword with the content, or "" when the
// subject is unknown or nothing matches. Never an error: an empty
// suggestion is the degraded result.
func Classify(content, subject string) string {
	chapterList, ok := Catalog[subject]
	if !ok {
		return ""
	}

	contentLower := strings.ToLower(content)
	for _, chapter := range chapterList {
		for _, keyword := range strings.Fields(strings.ToLower(chapter)) {
			if len(keyword) < minKeywordLength {
				continue
			}
			if strings.Contains(contentLower, keyword) {
				return chapter
			}
		}
	}
	return ""
}
