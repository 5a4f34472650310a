// Package version resolves the project version once at startup. The value
// comes from the Go build info recorded in the binary when the module is
// stamped there, and otherwise from the project.version field of a manifest
// file (pyproject.toml by default).
package version
