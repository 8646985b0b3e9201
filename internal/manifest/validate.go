package manifest

import (
	"fmt"

	"github.com/quantmind-br/contentpack/internal/domain"
)

// Validate reports every identifier the manifest references that is not a
// key of its document map, and documents whose type is not a known
// classification. It never modifies the manifest.
func Validate(m *domain.Manifest) []string {
	var warnings []string
	known := m.Docs.Has

	for docID, doc := range m.Docs.All() {
		if !doc.Type.IsValid() {
			warnings = append(warnings, fmt.Sprintf(`docs: "%s" has unknown type "%s"`, docID, doc.Type))
		}
	}

	for indexID, children := range m.IndexGraph.All() {
		if !known(indexID) {
			warnings = append(warnings, fmt.Sprintf(`indexGraph: index "%s" not in docs`, indexID))
		}
		for _, childID := range children {
			if !known(childID) {
				warnings = append(warnings, fmt.Sprintf(`indexGraph: child "%s" of "%s" not in docs`, childID, indexID))
			}
		}
	}

	for docID, rel := range m.Relations.NextPrev.All() {
		if !known(docID) {
			warnings = append(warnings, fmt.Sprintf(`relations: doc "%s" not in docs`, docID))
		}
		for _, link := range []struct {
			name string
			id   *string
		}{
			{"prev", rel.Prev},
			{"next", rel.Next},
			{"up", rel.Up},
		} {
			if link.id != nil && *link.id != "" && !known(*link.id) {
				warnings = append(warnings, fmt.Sprintf(`relations: %s "%s" of "%s" not in docs`, link.name, *link.id, docID))
			}
		}
	}

	for _, node := range m.SidebarTree {
		warnings = validateSidebarNode(node, known, warnings)
	}

	return warnings
}

func validateSidebarNode(node *domain.SidebarNode, known func(string) bool, warnings []string) []string {
	if node == nil {
		return warnings
	}
	if node.DocID != "" && !known(node.DocID) {
		warnings = append(warnings, fmt.Sprintf(`sidebarTree: docId "%s" not in docs`, node.DocID))
	}
	for _, item := range node.Items {
		warnings = validateSidebarNode(item, known, warnings)
	}
	return warnings
}
