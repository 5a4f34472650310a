package version

import (
	"fmt"
	"runtime/debug"
)

// develVersion is what the toolchain records for a main module built from a
// working tree without a tag.
const develVersion = "(devel)"

// FromBuildInfo looks up the version recorded for modulePath, either as the
// main module or as a dependency when the module is linked in as a library.
func FromBuildInfo(info *debug.BuildInfo, modulePath string) (string, error) {
	if info == nil || modulePath == "" {
		return "", ErrMetadataNotFound
	}

	if info.Main.Path == modulePath && usable(info.Main.Version) {
		return info.Main.Version, nil
	}

	for _, dep := range info.Deps {
		if dep == nil || dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil && usable(dep.Replace.Version) {
			return dep.Replace.Version, nil
		}
		if usable(dep.Version) {
			return dep.Version, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrMetadataNotFound, modulePath)
}

func usable(v string) bool {
	return v != "" && v != develVersion
}
