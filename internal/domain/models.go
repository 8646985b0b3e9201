package domain

import "github.com/quantmind-br/contentpack/internal/ordered"

// DocType classifies a document for navigation purposes
type DocType string

const (
	DocTypeIndex       DocType = "index"
	DocTypeUnit        DocType = "unit"
	DocTypeHandout     DocType = "handout"
	DocTypePYQ         DocType = "pyq"
	DocTypeNotes       DocType = "notes"
	DocTypeAssignments DocType = "assignments"
	DocTypeProjects    DocType = "projects"
	DocTypeDoc         DocType = "doc"
)

// DocTypes lists every classification in rule priority order
var DocTypes = []DocType{
	DocTypeIndex,
	DocTypeUnit,
	DocTypeHandout,
	DocTypePYQ,
	DocTypeNotes,
	DocTypeAssignments,
	DocTypeProjects,
	DocTypeDoc,
}

// IsValid reports whether t is one of the known classifications
func (t DocType) IsValid() bool {
	for _, known := range DocTypes {
		if t == known {
			return true
		}
	}
	return false
}

// UnitInfo locates a unit document within its course sequence
type UnitInfo struct {
	Course string `json:"course"`
	Number int    `json:"number"`
}

// Document is the enriched record emitted for every registry entry
type Document struct {
	Title    string    `json:"title"`
	Type     DocType   `json:"type"`
	HTML     string    `json:"html"`
	Semester int       `json:"semester"`
	Unit     *UnitInfo `json:"unit,omitempty"`
}

// SidebarNode is one node of the semester → subject → item tree
type SidebarNode struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	DocID string         `json:"docId,omitempty"`
	Items []*SidebarNode `json:"items,omitempty"`
}

// Relation links a unit document to its neighbours and its notes page.
// Nil fields encode as JSON null.
type Relation struct {
	Prev *string `json:"prev"`
	Next *string `json:"next"`
	Up   *string `json:"up"`
}

// Relations groups the sequential navigation data
type Relations struct {
	NextPrev *ordered.Map[Relation] `json:"nextPrev"`
}

// Manifest is the navigation pack written for the content site
type Manifest struct {
	PackVersion    string                 `json:"packVersion"`
	GeneratedAt    string                 `json:"generatedAt"`
	Docs           *ordered.Map[Document] `json:"docs"`
	SidebarTree    []*SidebarNode         `json:"sidebarTree"`
	IndexGraph     *ordered.Map[[]string] `json:"indexGraph"`
	Relations      Relations              `json:"relations"`
	BacklinksGraph map[string][]string    `json:"backlinksGraph"`
}

// NewManifest creates a manifest whose collections are empty rather than nil,
// so they encode as {} and [].
func NewManifest() *Manifest {
	return &Manifest{
		Docs:           ordered.New[Document](),
		SidebarTree:    []*SidebarNode{},
		IndexGraph:     ordered.New[[]string](),
		Relations:      Relations{NextPrev: ordered.New[Relation]()},
		BacklinksGraph: map[string][]string{},
	}
}

// OptionalID returns a pointer to id, or nil when id is empty
func OptionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
