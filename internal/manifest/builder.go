package manifest

import (
	"time"

	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/registry"
)

const (
	packVersionLayout = "2006.01.02"
	generatedAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Builder assembles manifests from registries
type Builder struct {
	clock      domain.Clock
	onDocument func(id string)
}

// BuilderOptions contains options for creating a builder
type BuilderOptions struct {
	// Clock stamps packVersion and generatedAt. Defaults to the system clock.
	Clock domain.Clock
	// OnDocument is called once per document record created
	OnDocument func(id string)
}

// NewBuilder creates a new manifest builder
func NewBuilder(opts BuilderOptions) *Builder {
	clock := opts.Clock
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &Builder{
		clock:      clock,
		onDocument: opts.OnDocument,
	}
}

// Build derives the complete manifest for reg. The result is not validated;
// see Validate.
func (b *Builder) Build(reg *registry.Registry) *domain.Manifest {
	m := domain.NewManifest()

	m.Docs = BuildDocs(reg, b.onDocument)
	m.SidebarTree = BuildSidebarTree(m.Docs)
	m.IndexGraph = BuildIndexGraph(m.Docs, reg)
	m.Relations = BuildRelations(m.Docs)

	now := b.clock.Now()
	m.PackVersion = PackVersion(now)
	m.GeneratedAt = GeneratedAt(now)

	return m
}

// PackVersion formats t as the dotted UTC date, e.g. "2026.10.19"
func PackVersion(t time.Time) string {
	return t.UTC().Format(packVersionLayout)
}

// GeneratedAt formats t as a UTC timestamp with millisecond precision,
// e.g. "2026-10-19T08:30:00.000Z"
func GeneratedAt(t time.Time) string {
	return t.UTC().Format(generatedAtLayout)
}
