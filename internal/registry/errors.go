package registry

import "errors"

// Sentinel errors for the registry package
var (
	// ErrFileNotFound indicates the registry file does not exist
	ErrFileNotFound = errors.New("registry file not found")

	// ErrInvalidFormat indicates the registry is not a JSON/YAML object
	ErrInvalidFormat = errors.New("registry must be a JSON or YAML object")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")
)
