package version

import "errors"

var (
	// ErrMetadataNotFound is returned when the build info carries no usable version for the module.
	ErrMetadataNotFound = errors.New("module version not found in build info")
	// ErrMalformedManifest is returned when the manifest cannot be parsed.
	ErrMalformedManifest = errors.New("malformed manifest")
	// ErrFieldMissing is returned when the manifest lacks the project.version field.
	ErrFieldMissing = errors.New("manifest field missing")
)
