package version

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultManifestPath is read when the build info has no version for the module.
const DefaultManifestPath = "./pyproject.toml"

// manifest mirrors the subset of the project manifest the resolver cares about.
// Pointers distinguish a missing key from an empty one.
type manifest struct {
	Project *manifestProject `toml:"project" yaml:"project"`
}

type manifestProject struct {
	Version *string `toml:"version" yaml:"version"`
}

// ReadManifest decodes manifest data and returns its project.version field.
// YAML is used for .yaml and .yml paths; everything else is parsed as TOML.
func ReadManifest(path string, data []byte) (string, error) {
	var doc manifest
	if err := decodeManifest(path, data, &doc); err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrMalformedManifest, path, err)
	}

	if doc.Project == nil {
		return "", fmt.Errorf("%w: %s has no [project] table", ErrFieldMissing, path)
	}
	if doc.Project.Version == nil {
		return "", fmt.Errorf("%w: %s has no project.version", ErrFieldMissing, path)
	}

	v := strings.TrimSpace(*doc.Project.Version)
	if v == "" {
		return "", fmt.Errorf("%w: %s has an empty project.version", ErrFieldMissing, path)
	}
	return v, nil
}

func decodeManifest(path string, data []byte, doc *manifest) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, doc)
	default:
		return toml.Unmarshal(data, doc)
	}
}
