// Package config loads runtime configuration from defaults, environment
// variables, an optional YAML file and CLI flags, in increasing order of
// precedence. It decides which module path and manifest the version resolver
// uses, the log level, and the settings of the HTTP service.
package config
