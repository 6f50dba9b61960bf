// Copyright 2026 The zxc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package resolve turns an import string written in source into a concrete
// file to read: it rebases "@std/..." imports under a configured standard
// library root, joins relative imports against the importing file's
// directory, and reads file contents through an afero filesystem so the
// converter (spec.md §4.4) can be tested against an in-memory tree without
// touching disk.
package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// stdPrefix is the import spelling that rebases under StdRoot.
const stdPrefix = "@std/"

// sourceExt is the Language's source file extension (spec.md §6).
const sourceExt = ".zx"

// Config supplies the external collaborators spec.md §6 names: the
// standard-library root and the filesystem. The zero Config has no
// filesystem and ReadFile will panic; callers always set FS explicitly.
type Config struct {
	// StdRoot is the process-global standard library root; "@std/foo/bar"
	// resolves to "<StdRoot>/foo/bar.zx".
	StdRoot string

	// ImportPaths lists additional import directories. Entries may be glob
	// patterns (doublestar syntax) that ExpandImportPaths expands. Resolve
	// does not consult them: non-std imports resolve only as absolute paths
	// or relative to the importing file's directory.
	ImportPaths []string

	FS afero.Fs
}

// ExpandImportPaths expands any glob patterns in cfg.ImportPaths (e.g.
// "vendor/*/src") into concrete directories, using doublestar so patterns
// like "**" behave the same across platforms. Non-glob entries pass through
// unchanged even if they don't yet exist, so callers can point at a
// directory that will be created by a later build step.
func (cfg *Config) ExpandImportPaths() ([]string, error) {
	var out []string
	for _, p := range cfg.ImportPaths {
		if !doublestar.ValidatePattern(p) || !strings.ContainsAny(p, "*?[") {
			out = append(out, p)
			continue
		}
		matches, err := doublestar.Glob(afero.NewIOFS(cfg.FS), p)
		if err != nil {
			return nil, fmt.Errorf("resolve: expanding import path %q: %w", p, err)
		}
		out = append(out, matches...)
	}
	return out, nil
}

// Resolved is the outcome of resolving one import string.
type Resolved struct {
	Path  string // absolute (or FS-rooted) path to the file to read
	IsStd bool   // true for "@std/..." imports, which dedup silently
}

// Resolve maps an import string written in source to a concrete path,
// relative to dir (the importing file's directory), per spec.md §4.4:
//   - "@std/foo/bar" rebases under cfg.StdRoot with a ".zx" suffix appended.
//   - An absolute path is used as-is.
//   - Anything else is joined against dir.
func (cfg *Config) Resolve(importStr string, dir string) (Resolved, error) {
	if strings.HasPrefix(importStr, stdPrefix) {
		rel := strings.TrimPrefix(importStr, stdPrefix)
		if !doublestar.ValidatePattern(rel) {
			return Resolved{}, fmt.Errorf("resolve: invalid std import path %q", importStr)
		}
		if cfg.StdRoot == "" {
			return Resolved{}, fmt.Errorf("resolve: %q requires a configured standard library root", importStr)
		}
		return Resolved{Path: filepath.Join(cfg.StdRoot, rel+sourceExt), IsStd: true}, nil
	}

	if filepath.IsAbs(importStr) {
		return Resolved{Path: filepath.Clean(importStr)}, nil
	}

	return Resolved{Path: filepath.Clean(filepath.Join(dir, importStr))}, nil
}

// Canonicalize normalizes path into the cycle-detection key spec.md §4.4
// requires: two spellings of the same file must canonicalize to the same
// key. afero filesystems (notably MemMapFs, used by tests) don't model
// symlinks, so lexical cleaning is the canonicalization afero can support;
// OsFs callers that need symlink resolution should clean with
// filepath.EvalSymlinks before constructing the Config.
func Canonicalize(path string) string {
	return filepath.Clean(path)
}

// ReadFile reads path's full contents through cfg.FS, closing the handle
// before returning so the caller holds only the owned buffer (spec.md §5:
// "File handles: opened, fully read into an owned buffer, and closed before
// any token points into the buffer").
func (cfg *Config) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(cfg.FS, path)
	if err != nil {
		return "", fmt.Errorf("resolve: reading %q: %w", path, err)
	}
	return string(data), nil
}
