package manifest

import (
	"regexp"
	"slices"
	"strings"

	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/ordered"
)

var (
	lastSegmentRe = regexp.MustCompile(`_[^_]+$`)
	unitLikeRe    = regexp.MustCompile(`(?i)unit\d+`)
)

type unitRef struct {
	id     string
	number int
}

// BuildRelations links the units of each course into a linear prev/next
// chain ordered by unit number, each pointing up to the course notes page.
func BuildRelations(docs *ordered.Map[domain.Document]) domain.Relations {
	courses := ordered.New[[]unitRef]()

	for id, doc := range docs.All() {
		if doc.Type != domain.DocTypeUnit || doc.Unit == nil {
			continue
		}
		units, _ := courses.Get(doc.Unit.Course)
		courses.Set(doc.Unit.Course, append(units, unitRef{id: id, number: doc.Unit.Number}))
	}

	nextPrev := ordered.New[domain.Relation]()
	for course, units := range courses.All() {
		slices.SortStableFunc(units, func(a, b unitRef) int {
			return a.number - b.number
		})

		up, _ := FindNotesIndex(course, docs)

		for i, unit := range units {
			rel := domain.Relation{Up: domain.OptionalID(up)}
			if i > 0 {
				rel.Prev = domain.OptionalID(units[i-1].id)
			}
			if i < len(units)-1 {
				rel.Next = domain.OptionalID(units[i+1].id)
			}
			nextPrev.Set(unit.id, rel)
		}
	}

	return domain.Relations{NextPrev: nextPrev}
}

// FindNotesIndex resolves the notes page a course's units point up to.
// Fixed candidates are probed first, then the first document in registry
// order that starts with the course, mentions notes and is not a unit.
func FindNotesIndex(course string, docs *ordered.Map[domain.Document]) (string, bool) {
	candidates := []string{
		course + "_notes",
		course + "_notes_index",
		lastSegmentRe.ReplaceAllString(course, "_notes"),
	}
	for _, candidate := range candidates {
		if docs.Has(candidate) {
			return candidate, true
		}
	}

	for id := range docs.All() {
		if strings.HasPrefix(id, course) && strings.Contains(id, "notes") && !unitLikeRe.MatchString(id) {
			return id, true
		}
	}

	return "", false
}
