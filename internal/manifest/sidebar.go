package manifest

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/ordered"
)

var (
	subjectIndexRe  = regexp.MustCompile(`semester_\d+_[^_]+$`)
	leadingNumberRe = regexp.MustCompile(`^\s*[+-]?\d`)
)

// sidebarTypes are the types allowed to surface in the sidebar at all
var sidebarTypes = map[domain.DocType]bool{
	domain.DocTypeIndex:       true,
	domain.DocTypeHandout:     true,
	domain.DocTypeNotes:       true,
	domain.DocTypePYQ:         true,
	domain.DocTypeAssignments: true,
	domain.DocTypeProjects:    true,
}

// sidebarItemTypes are listed as items under their subject
var sidebarItemTypes = map[domain.DocType]bool{
	domain.DocTypeHandout:     true,
	domain.DocTypeNotes:       true,
	domain.DocTypePYQ:         true,
	domain.DocTypeAssignments: true,
	domain.DocTypeProjects:    true,
}

type semesterGroup struct {
	number   int
	node     *domain.SidebarNode
	subjects *ordered.Map[*domain.SidebarNode]
}

// BuildSidebarTree groups the essential entry points by semester and subject.
// Semesters are sorted numerically; subjects and items keep registry order.
func BuildSidebarTree(docs *ordered.Map[domain.Document]) []*domain.SidebarNode {
	groups := make(map[int]*semesterGroup)

	for id, doc := range docs.All() {
		if doc.Semester == 0 || !sidebarTypes[doc.Type] {
			continue
		}

		subject := ExtractSubject(id)
		if subject == "" {
			continue
		}

		group, ok := groups[doc.Semester]
		if !ok {
			group = &semesterGroup{
				number: doc.Semester,
				node: &domain.SidebarNode{
					ID:    fmt.Sprintf("sem%d", doc.Semester),
					Title: fmt.Sprintf("Semester %d", doc.Semester),
				},
				subjects: ordered.New[*domain.SidebarNode](),
			}
			groups[doc.Semester] = group
		}

		subjectNode, ok := group.subjects.Get(subject)
		if !ok {
			subjectNode = &domain.SidebarNode{
				ID:    fmt.Sprintf("s%d_%s", doc.Semester, subject),
				Title: FormatTitle(subject),
			}
			group.subjects.Set(subject, subjectNode)
		}

		switch {
		case doc.Type == domain.DocTypeIndex && subjectIndexRe.MatchString(id):
			subjectNode.DocID = id
		case sidebarItemTypes[doc.Type]:
			subjectNode.Items = append(subjectNode.Items, &domain.SidebarNode{
				ID:    id,
				Title: FormatTitle(string(doc.Type)),
				DocID: id,
			})
		}
	}

	sorted := make([]*semesterGroup, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	slices.SortFunc(sorted, func(a, b *semesterGroup) int {
		return a.number - b.number
	})

	tree := make([]*domain.SidebarNode, 0, len(sorted))
	for _, g := range sorted {
		g.node.Items = make([]*domain.SidebarNode, 0, g.subjects.Len())
		for _, subjectNode := range g.subjects.All() {
			g.node.Items = append(g.node.Items, subjectNode)
		}
		tree = append(tree, g.node)
	}
	return tree
}

// ExtractSubject returns the subject token of ids shaped
// "semester_<N>_<subject>[_...]", or "" for any other shape.
func ExtractSubject(id string) string {
	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		return ""
	}
	if parts[0] != "semester" || !leadingNumberRe.MatchString(parts[1]) {
		return ""
	}
	return parts[2]
}
