package manifest

import (
	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/ordered"
	"github.com/quantmind-br/contentpack/internal/registry"
)

// htmlPrefix is where the site serves rendered documents
const htmlPrefix = "docs/"

// BuildDocs creates one document record per registry entry, in registry order.
// onDocument, when non-nil, is called after each record is created.
func BuildDocs(reg *registry.Registry, onDocument func(id string)) *ordered.Map[domain.Document] {
	docs := ordered.New[domain.Document]()

	for id, entry := range reg.All() {
		docs.Set(id, NewDocument(id, entry))
		if onDocument != nil {
			onDocument(id)
		}
	}

	return docs
}

// NewDocument derives the document record for a single registry entry
func NewDocument(id string, entry registry.Entry) domain.Document {
	docType := Classify(id, entry.Source)

	title := entry.Title
	if title == "" {
		title = fallbackTitle(id)
	}

	doc := domain.Document{
		Title:    title,
		Type:     docType,
		HTML:     htmlPrefix + id + ".html",
		Semester: ExtractSemester(id),
	}
	if docType == domain.DocTypeUnit {
		doc.Unit = ExtractUnit(id)
	}
	return doc
}
