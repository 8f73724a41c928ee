package svg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diagram = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><g><svg x="1"></svg></g></svg>
`

func TestWithBackgroundInsertsAfterRootTag(t *testing.T) {
	out := WithBackground(diagram)

	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">`+Background+`<g>`)
	assert.Contains(t, out, `<svg x="1"></svg>`, "nested svg elements are left alone")
}

func TestWithBackgroundIsIdempotent(t *testing.T) {
	once := WithBackground(diagram)
	assert.Equal(t, once, WithBackground(once))
}

func TestWithBackgroundWithoutRootElement(t *testing.T) {
	assert.Equal(t, "not an image", WithBackground("not an image"))
}

func TestAddBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavedrom_Ab3F9.svg")
	require.NoError(t, os.WriteFile(path, []byte(diagram), 0664))

	changed, err := AddBackground(path)
	require.NoError(t, err)
	assert.True(t, changed)
	normalized, err := os.ReadFile(path)
	require.NoError(t, err)

	changed, err = AddBackground(path)
	require.NoError(t, err)
	assert.False(t, changed)
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, normalized, again)
}

func TestAddBackgroundMissingFile(t *testing.T) {
	_, err := AddBackground(filepath.Join(t.TempDir(), "missing.svg"))
	assert.Error(t, err)
}

func TestProcessNormalizesEveryImageInFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "adder")
	require.NoError(t, os.Mkdir(dir, 0775))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.svg"), []byte(diagram), 0664))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.svg"), []byte(WithBackground(diagram)), 0664))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("<svg>"), 0664))

	result := Process(component.New(dir))
	assert.Equal(t, component.Succeeded, result.Status)
	assert.Len(t, result.Changes, 1)

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "<svg>", string(data))

	result = Process(component.New(dir))
	assert.Empty(t, result.Changes)
	assert.Equal(t, component.Skipped, Process(component.New(t.TempDir())).Status)
}
