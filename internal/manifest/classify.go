package manifest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quantmind-br/contentpack/internal/domain"
)

var (
	semesterIndexRe = regexp.MustCompile(`semester_?\d+[\\/]index\.html$`)
	indexFileRe     = regexp.MustCompile(`[\\/]index\.html$`)
	unitSuffixRe    = regexp.MustCompile(`unit\d+$`)
	shortUnitRe     = regexp.MustCompile(`_u\d+$`)

	semesterRe        = regexp.MustCompile(`(?i)semester_?(\d+)`)
	unitNumberRe      = regexp.MustCompile(`(?i)unit(\d+)`)
	shortUnitNumberRe = regexp.MustCompile(`_u(\d+)$`)
	notesCourseRe     = regexp.MustCompile(`(?i)^(.+?)_notes_unit`)
	shortCourseRe     = regexp.MustCompile(`^(.+?)_u\d+$`)
)

// classifyRule maps a predicate over the lower-cased id and source to a type
type classifyRule struct {
	name    string
	match   func(id, source string) bool
	docType domain.DocType
}

// classifyRules is evaluated top to bottom; the first match wins. Unit
// detection precedes the substring checks, so "x_notes_unit1" is a unit.
var classifyRules = []classifyRule{
	{
		name: "index page",
		match: func(id, source string) bool {
			return strings.HasSuffix(id, "_index") ||
				semesterIndexRe.MatchString(source) ||
				indexFileRe.MatchString(source)
		},
		docType: domain.DocTypeIndex,
	},
	{
		name: "numbered unit",
		match: func(id, _ string) bool {
			return unitSuffixRe.MatchString(id) || shortUnitRe.MatchString(id)
		},
		docType: domain.DocTypeUnit,
	},
	{name: "handout", match: idContains("handout"), docType: domain.DocTypeHandout},
	{name: "pyq", match: idContains("pyq"), docType: domain.DocTypePYQ},
	{name: "notes", match: idContains("notes"), docType: domain.DocTypeNotes},
	{name: "assignment", match: idContains("assignment"), docType: domain.DocTypeAssignments},
	{name: "project", match: idContains("project"), docType: domain.DocTypeProjects},
}

func idContains(substr string) func(id, source string) bool {
	return func(id, _ string) bool {
		return strings.Contains(id, substr)
	}
}

// DefaultRule names the fallback when no classification rule matches
const DefaultRule = "default"

// Classify returns the document type for an identifier and its source path
func Classify(id, source string) domain.DocType {
	docType, _ := Explain(id, source)
	return docType
}

// Explain is Classify that also reports the name of the matching rule
func Explain(id, source string) (domain.DocType, string) {
	lowerID := strings.ToLower(id)
	lowerSource := strings.ToLower(source)

	for _, rule := range classifyRules {
		if rule.match(lowerID, lowerSource) {
			return rule.docType, rule.name
		}
	}
	return domain.DocTypeDoc, DefaultRule
}

// ExtractSemester returns the number following the first "semester" token
// in id, or 0 when there is none.
func ExtractSemester(id string) int {
	m := semesterRe.FindStringSubmatch(id)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ExtractUnit derives the course and unit number of a unit document.
// It returns nil when id carries no recognizable unit number.
func ExtractUnit(id string) *domain.UnitInfo {
	m := unitNumberRe.FindStringSubmatch(id)
	if m == nil {
		m = shortUnitNumberRe.FindStringSubmatch(id)
	}
	if m == nil {
		return nil
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	return &domain.UnitInfo{
		Course: extractCourse(id),
		Number: number,
	}
}

func extractCourse(id string) string {
	if m := notesCourseRe.FindStringSubmatch(id); m != nil {
		return m[1]
	}
	if m := shortCourseRe.FindStringSubmatch(id); m != nil {
		return m[1]
	}
	parts := strings.Split(id, "_")
	return strings.Join(parts[:len(parts)-1], "_")
}
