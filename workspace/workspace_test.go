package workspace

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func initRepo(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	_, err = git.PlainInit(root, false)
	require.NoError(t, err)
	return root
}

func TestOpenFindsRepositoryRoot(t *testing.T) {
	root := initRepo(t)
	nested := filepath.Join(root, "source", "adder")
	require.NoError(t, os.MkdirAll(nested, 0775))

	ws, err := Open(nested)
	require.NoError(t, err)
	assert.True(t, ws.IsRepo())
	assert.Equal(t, root, ws.Root())
	assert.Equal(t, filepath.Join(root, "source"), ws.Path("source"))
}

func TestOpenOutsideRepository(t *testing.T) {
	dir := t.TempDir()

	ws, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, ws.IsRepo())
	assert.Equal(t, dir, ws.Root())

	dirty, err := ws.DirtyFiles(dir)
	require.NoError(t, err)
	assert.Empty(t, dirty)
}

func TestDirtyFiles(t *testing.T) {
	root := initRepo(t)
	for _, file := range []string{"source/adder/README.md", "source/adder/adder.vhd", "testbench/adder_tb.vhd"} {
		path := filepath.Join(root, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0775))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0664))
	}

	ws, err := Open(root)
	require.NoError(t, err)

	dirty, err := ws.DirtyFiles("source")
	require.NoError(t, err)
	assert.Equal(t, []string{"source/adder/README.md", "source/adder/adder.vhd"}, dirty)

	dirty, err = ws.DirtyFiles(root)
	require.NoError(t, err)
	assert.Len(t, dirty, 3)

	_, err = ws.DirtyFiles(filepath.Dir(root))
	assert.Error(t, err)
}
