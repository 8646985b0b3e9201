package output

import (
	"github.com/quantmind-br/contentpack/internal/domain"
)

// Summary holds the counts reported after a build
type Summary struct {
	Documents  int
	Semesters  int
	IndexPages int
	Relations  int
	ByType     map[domain.DocType]int
}

// Summarize counts the sections of m
func Summarize(m *domain.Manifest) Summary {
	s := Summary{
		Documents:  m.Docs.Len(),
		Semesters:  len(m.SidebarTree),
		IndexPages: m.IndexGraph.Len(),
		Relations:  m.Relations.NextPrev.Len(),
		ByType:     make(map[domain.DocType]int),
	}

	for _, doc := range m.Docs.All() {
		s.ByType[doc.Type]++
	}

	return s
}

// Count returns how many documents have type t
func (s Summary) Count(t domain.DocType) int {
	return s.ByType[t]
}
