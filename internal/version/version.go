package version

import (
	"fmt"
	"os"
	"runtime/debug"

	"go.uber.org/zap"
)

// Source identifies where a resolved version came from.
type Source string

const (
	// SourceBuildInfo means the version was recorded in the binary's build info.
	SourceBuildInfo Source = "buildinfo"
	// SourceManifest means the version was read from the manifest file.
	SourceManifest Source = "manifest"
)

// Info is the outcome of a resolution. It is computed once and never modified.
type Info struct {
	Version      string `json:"version"`
	Source       Source `json:"source"`
	ModulePath   string `json:"module"`
	ManifestPath string `json:"manifest,omitempty"`
}

// Resolver determines the project version.
type Resolver struct {
	modulePath    string
	manifestPath  string
	readBuildInfo func() (*debug.BuildInfo, bool)
	readFile      func(string) ([]byte, error)
	logger        *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithManifestPath overrides the fallback manifest location.
func WithManifestPath(path string) Option {
	return func(r *Resolver) {
		r.manifestPath = path
	}
}

// WithBuildInfoReader replaces runtime/debug.ReadBuildInfo, primarily for tests.
func WithBuildInfoReader(read func() (*debug.BuildInfo, bool)) Option {
	return func(r *Resolver) {
		r.readBuildInfo = read
	}
}

// WithFileReader replaces os.ReadFile, primarily for tests.
func WithFileReader(read func(string) ([]byte, error)) Option {
	return func(r *Resolver) {
		r.readFile = read
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver builds a Resolver that looks up modulePath in the build info.
func NewResolver(modulePath string, opts ...Option) *Resolver {
	r := &Resolver{
		modulePath:    modulePath,
		manifestPath:  DefaultManifestPath,
		readBuildInfo: debug.ReadBuildInfo,
		readFile:      os.ReadFile,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// Resolve returns the build info version when there is one and falls back to
// the manifest otherwise. Manifest read and parse errors are not recovered.
func (r *Resolver) Resolve() (Info, error) {
	info, _ := r.readBuildInfo()
	v, err := FromBuildInfo(info, r.modulePath)
	if err == nil {
		r.logger.Debug("version resolved from build info",
			zap.String("module", r.modulePath),
			zap.String("version", v),
		)
		return Info{Version: v, Source: SourceBuildInfo, ModulePath: r.modulePath}, nil
	}

	r.logger.Info("build info has no version, reading manifest",
		zap.String("module", r.modulePath),
		zap.String("manifest", r.manifestPath),
		zap.NamedError("lookup", err),
	)

	data, err := r.readFile(r.manifestPath)
	if err != nil {
		return Info{}, fmt.Errorf("read manifest: %w", err)
	}

	v, err = ReadManifest(r.manifestPath, data)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Version:      v,
		Source:       SourceManifest,
		ModulePath:   r.modulePath,
		ManifestPath: r.manifestPath,
	}, nil
}

// MustResolve is like Resolve but panics when no version can be determined.
func (r *Resolver) MustResolve() Info {
	info, err := r.Resolve()
	if err != nil {
		panic(fmt.Sprintf("failed to resolve version: %v", err))
	}
	return info
}
