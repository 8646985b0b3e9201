// Package registry loads the document registry that drives manifest
// generation. The registry is a flat object mapping document identifiers to
// their title and source path:
//
//	{
//	  "semester_1_c": {"title": "C Programming", "source": "semester1/c/index.html"},
//	  "semester_1_c_handout": {"source": "semester1/c/handout.html"}
//	}
//
// YAML registries (.yaml, .yml) with the same shape are also accepted.
//
// Key order is preserved: the manifest builder breaks ties by registry order,
// so two loads of the same file always yield the same sequence.
//
// # Usage
//
//	loader := registry.NewLoader()
//	reg, err := loader.Load("content_build/doc_registry.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for id, entry := range reg.All() {
//	    // ...
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: registry file does not exist
//   - ErrInvalidFormat: file is not a valid JSON/YAML object
//   - ErrUnsupportedExt: unsupported file extension
//
// Entries themselves are not validated. Missing or mistyped fields decode to
// empty strings and fall back to defaults downstream.
package registry
