// Package manifest compiles a document registry into the navigation manifest
// consumed by the content site.
//
// A manifest holds five views over the same document set:
//
//   - docs: one enriched record per registry entry (type, semester, unit)
//   - sidebarTree: semester → subject → essential links
//   - indexGraph: index document → child documents, by directory containment
//   - relations.nextPrev: prev/next/up links between numbered units of a course
//   - backlinksGraph: reserved, always empty
//
// # Usage
//
//	builder := manifest.NewBuilder(manifest.BuilderOptions{})
//	m := builder.Build(reg)
//	for _, w := range manifest.Validate(m) {
//	    log.Println(w)
//	}
//
// Every step is deterministic: ties are broken by registry order, so the
// output depends only on the registry and the build time stamp.
//
// Classification and title formatting are expressed as ordered rule tables
// (first match wins) rather than nested conditionals.
package manifest
