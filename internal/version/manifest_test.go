package version

import (
	"errors"
	"testing"
)

func TestReadManifest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		data    string
		want    string
		wantErr error
	}{
		{
			name: "PyprojectToml",
			path: "pyproject.toml",
			data: `[build-system]
requires = ["hatchling"]

[project]
name = "bump-my-version-sandbox"
version = "0.1.0"
dependencies = []

[tool.bumpversion]
current_version = "0.1.0"
`,
			want: "0.1.0",
		},
		{
			name: "TrimsWhitespace",
			path: "pyproject.toml",
			data: "[project]\nversion = \"  1.0.0 \"\n",
			want: "1.0.0",
		},
		{
			name: "UnknownExtensionIsToml",
			path: "manifest",
			data: "[project]\nversion = \"3.2.1\"\n",
			want: "3.2.1",
		},
		{
			name: "Yaml",
			path: "project.yaml",
			data: "project:\n  name: sandbox\n  version: 4.5.6\n",
			want: "4.5.6",
		},
		{
			name: "YmlUpperCase",
			path: "PROJECT.YML",
			data: "project:\n  version: \"7.0.0-rc.1\"\n",
			want: "7.0.0-rc.1",
		},
		{
			name:    "MissingProjectTable",
			path:    "pyproject.toml",
			data:    "[tool.bumpversion]\ncurrent_version = \"0.1.0\"\n",
			wantErr: ErrFieldMissing,
		},
		{
			name:    "MissingVersionKey",
			path:    "pyproject.toml",
			data:    "[project]\nname = \"sandbox\"\n",
			wantErr: ErrFieldMissing,
		},
		{
			name:    "EmptyVersion",
			path:    "pyproject.toml",
			data:    "[project]\nversion = \"\"\n",
			wantErr: ErrFieldMissing,
		},
		{
			name:    "EmptyFile",
			path:    "pyproject.toml",
			data:    "",
			wantErr: ErrFieldMissing,
		},
		{
			name:    "MalformedToml",
			path:    "pyproject.toml",
			data:    "[project\nversion = ",
			wantErr: ErrMalformedManifest,
		},
		{
			name:    "MalformedYaml",
			path:    "project.yaml",
			data:    "project: [unterminated\n",
			wantErr: ErrMalformedManifest,
		},
		{
			name:    "VersionNotString",
			path:    "pyproject.toml",
			data:    "[project]\nversion = 3\n",
			wantErr: ErrMalformedManifest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadManifest(tc.path, []byte(tc.data))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("expected version %q, got %q", tc.want, got)
			}
		})
	}
}
