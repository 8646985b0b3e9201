package registry

import "github.com/quantmind-br/contentpack/internal/ordered"

// Entry is the raw metadata recorded for one document
type Entry struct {
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
	Source string `yaml:"source" json:"source"`
}

// Registry maps document identifiers to entries in file order
type Registry = ordered.Map[Entry]

// New creates an empty registry
func New() *Registry {
	return ordered.New[Entry]()
}
