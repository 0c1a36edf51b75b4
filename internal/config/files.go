package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolvedLibrary is one library's expanded, deduplicated file list.
type ResolvedLibrary struct {
	Name  string
	Files []string
}

// ResolveLibraries expands every library-scoped glob pattern against
// rootPath, adds the explicit file entries (relative ones joined to
// rootPath, not globbed), and returns the resulting per-library file
// lists, library names sorted for determinism.
func (c *Config) ResolveLibraries(rootPath string) ([]ResolvedLibrary, error) {
	acc := make(map[string]map[string]bool)
	ensureLib := func(name string) map[string]bool {
		if name == "" {
			name = "work"
		}
		if acc[name] == nil {
			acc[name] = make(map[string]bool)
		}
		return acc[name]
	}

	for libName, libCfg := range c.Libraries {
		fileSet := ensureLib(libName)
		included := make(map[string]bool)
		for _, pattern := range libCfg.Files {
			for _, match := range expandGlob(rootPath, pattern) {
				if isVHDLFile(match) {
					included[match] = true
				}
			}
		}
		for _, pattern := range libCfg.Exclude {
			for _, match := range expandGlob(rootPath, pattern) {
				delete(included, match)
			}
		}
		for f := range included {
			fileSet[f] = true
		}
	}

	for _, entry := range c.Files {
		if entry.File == "" || !isVHDLFile(entry.File) {
			continue
		}
		fileSet := ensureLib(entry.Library)
		path := entry.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootPath, path)
		}
		fileSet[path] = true
	}

	libNames := make([]string, 0, len(acc))
	for name := range acc {
		libNames = append(libNames, name)
	}
	sort.Strings(libNames)

	result := make([]ResolvedLibrary, 0, len(libNames))
	for _, name := range libNames {
		files := make([]string, 0, len(acc[name]))
		for f := range acc[name] {
			files = append(files, f)
		}
		sort.Strings(files)
		result = append(result, ResolvedLibrary{Name: name, Files: files})
	}
	return result, nil
}

// expandGlob resolves a single doublestar pattern against rootPath,
// accepting both relative and absolute patterns. Malformed patterns
// silently contribute no matches, matching the teacher's
// skip-invalid-patterns behaviour.
func expandGlob(rootPath, pattern string) []string {
	base := rootPath
	if filepath.IsAbs(pattern) {
		base = "/"
		pattern = strings.TrimPrefix(pattern, "/")
	}
	fsys := os.DirFS(base)
	matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern))
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(base, filepath.FromSlash(m)))
	}
	return out
}

func isVHDLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".vhd" || ext == ".vhdl"
}

// GetAllFiles returns every VHDL file from every library, deduplicated.
func (c *Config) GetAllFiles(rootPath string) ([]string, error) {
	libs, err := c.ResolveLibraries(rootPath)
	if err != nil {
		return nil, err
	}
	fileSet := make(map[string]bool)
	for _, lib := range libs {
		for _, f := range lib.Files {
			fileSet[f] = true
		}
	}
	result := make([]string, 0, len(fileSet))
	for f := range fileSet {
		result = append(result, f)
	}
	sort.Strings(result)
	return result, nil
}

// GetFileLibrary returns the library a file was resolved into, defaulting
// to "work" when the file matched no configured pattern.
func (c *Config) GetFileLibrary(filePath string, rootPath string) string {
	libs, err := c.ResolveLibraries(rootPath)
	if err != nil {
		return "work"
	}
	absPath, _ := filepath.Abs(filePath)
	for _, lib := range libs {
		for _, f := range lib.Files {
			absF, _ := filepath.Abs(f)
			if absPath == absF {
				return lib.Name
			}
		}
	}
	return "work"
}
