package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robert-at-pretension-io/vhdlfront/internal/config"
)

func TestReadLatin1DecodesHighBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.vhd")
	// 0xE9 is lowercase e-acute in latin-1; as UTF-8 it must decode to "é".
	require.NoError(t, os.WriteFile(path, []byte("-- caf\xe9\n"), 0644))

	src, err := readLatin1(path)
	require.NoError(t, err)
	require.Contains(t, src, "café")
}

func TestRunParsesAndFoldsSimpleEntity(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "counter.vhd"), []byte(
		"entity counter is\nport (clk : in bit);\nend entity counter;\n"), 0644))

	cfg := config.DefaultConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	proj, results := Run(ctx, cfg, Options{RootPath: dir})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	require.NotNil(t, results[0].Design)

	lib := proj.GetOrAddLibrary("work")
	require.Len(t, lib.Modules, 1)
	require.Equal(t, "counter", lib.Modules[0].Name)
}

func TestRunReportsParseFailurePerFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.vhd"), []byte(
		"entity is broken\n"), 0644))

	cfg := config.DefaultConfig()
	proj, results := Run(context.Background(), cfg, Options{RootPath: dir})
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	require.Empty(t, proj.Libraries)
}
