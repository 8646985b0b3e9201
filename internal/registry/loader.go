package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/contentpack/internal/ordered"
)

// Loader loads registry files
type Loader struct{}

// NewLoader creates a new registry loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a registry file from the given path
func (l *Loader) Load(path string) (*Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a registry from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Registry, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}
}

func decodeJSON(data []byte) (*Registry, error) {
	// ordered.Map accepts null as empty; a registry must be an object
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: top level is null, not an object", ErrInvalidFormat)
	}

	raw := ordered.New[json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	reg := New()
	for id, msg := range raw.All() {
		reg.Set(id, entryFromJSON(msg))
	}
	return reg, nil
}

// entryFromJSON reads title and source independently so one bad field does
// not discard the other.
func entryFromJSON(msg json.RawMessage) Entry {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil {
		return Entry{}
	}

	var e Entry
	if v, ok := fields["title"]; ok {
		_ = json.Unmarshal(v, &e.Title)
	}
	if v, ok := fields["source"]; ok {
		_ = json.Unmarshal(v, &e.Source)
	}
	return e
}

func decodeYAML(data []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrInvalidFormat)
	}

	root := doc.Content[0]
	reg := New()
	for i := 0; i+1 < len(root.Content); i += 2 {
		reg.Set(root.Content[i].Value, entryFromYAML(root.Content[i+1]))
	}
	return reg, nil
}

func entryFromYAML(node *yaml.Node) Entry {
	var e Entry
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return e
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])
		if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
			continue
		}
		switch key.Value {
		case "title":
			e.Title = value.Value
		case "source":
			e.Source = value.Value
		}
	}
	return e
}

// resolveAlias follows *alias references to the anchored node
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
