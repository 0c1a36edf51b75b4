package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("-- vhdl\n"), 0644))
}

func TestResolveLibrariesExpandsRecursiveGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.vhd"))
	writeFile(t, filepath.Join(root, "sub", "child.vhdl"))
	writeFile(t, filepath.Join(root, "sub", "notes.txt"))

	cfg := DefaultConfig()
	libs, err := cfg.ResolveLibraries(root)
	require.NoError(t, err)
	require.Len(t, libs, 1)
	require.Equal(t, "work", libs[0].Name)
	require.Len(t, libs[0].Files, 2)
}

func TestResolveLibrariesAppliesExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.vhd"))
	writeFile(t, filepath.Join(root, "vendor", "drop.vhd"))

	cfg := &Config{
		Libraries: map[string]LibraryConfig{
			"work": {
				Files:   []string{"**/*.vhd"},
				Exclude: []string{"vendor/**"},
			},
		},
	}
	libs, err := cfg.ResolveLibraries(root)
	require.NoError(t, err)
	require.Len(t, libs, 1)
	require.Len(t, libs[0].Files, 1)
	require.Contains(t, libs[0].Files[0], "keep.vhd")
}

func TestResolveLibrariesMultipleLibrariesSortedByName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "e.vhd"))
	writeFile(t, filepath.Join(root, "b", "e.vhd"))

	cfg := &Config{
		Libraries: map[string]LibraryConfig{
			"ieee_sim": {Files: []string{"b/*.vhd"}},
			"app":      {Files: []string{"a/*.vhd"}},
		},
	}
	libs, err := cfg.ResolveLibraries(root)
	require.NoError(t, err)
	require.Len(t, libs, 2)
	require.Equal(t, "app", libs[0].Name)
	require.Equal(t, "ieee_sim", libs[1].Name)
}

func TestGetFileLibraryDefaultsToWork(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultConfig()
	require.Equal(t, "work", cfg.GetFileLibrary(filepath.Join(root, "nonexistent.vhd"), root))
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "vhdlfront.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"files":[{"file":"a.vhd","library":"work"}]}`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2008", cfg.Standard)
	require.Empty(t, cfg.Libraries)
	require.Len(t, cfg.Files, 1)
}
