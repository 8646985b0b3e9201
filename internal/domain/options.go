package domain

// CommonOptions contains the run switches shared by the CLI and the
// orchestrator. Config file values are OR-ed in by the orchestrator.
type CommonOptions struct {
	Verbose bool
	// DryRun builds and validates without touching the output path
	DryRun bool
	// Strict fails the run when validation reports warnings
	Strict bool
	// Compress writes a .zst copy next to the manifest
	Compress bool
	// Progress shows a bar while documents are classified
	Progress bool
}
