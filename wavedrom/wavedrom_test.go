package wavedrom

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const image = `<svg xmlns="http://www.w3.org/2000/svg"><g/></svg>`

func setup(t *testing.T, name string, files map[string]string) component.Folder {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.Mkdir(dir, 0775))
	for file, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0664))
	}
	return component.New(dir)
}

func read(t *testing.T, folder component.Folder, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(folder.Path, name))
	require.NoError(t, err)
	return string(data)
}

func TestReconcileDeletesRenamesAndRewrites(t *testing.T) {
	folder := setup(t, "adder", map[string]string{
		"README.md":          "# Adder\n\n![timing](wavedrom_Ab3F9.svg)\n",
		"wavedrom_Ab3F9.svg": image,
		"wavedrom_Zz01Q.svg": image,
	})

	result, err := Reconcile(folder)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(folder.Path, "wavedrom_Zz01Q.svg"))
	assert.NoFileExists(t, filepath.Join(folder.Path, "wavedrom_Ab3F9.svg"))
	assert.FileExists(t, filepath.Join(folder.Path, "adder_wavedrom_0.svg"))
	assert.Equal(t, "# Adder\n\n![timing](adder_wavedrom_0.svg)\n", read(t, folder, "README.md"))
	assert.Contains(t, read(t, folder, "adder_wavedrom_0.svg"), svg.Background)

	assert.Equal(t, []Rename{{Old: "wavedrom_Ab3F9.svg", New: "adder_wavedrom_0.svg"}}, result.Renamed)
	assert.Len(t, result.Deleted, 1)
	assert.Len(t, result.Rewritten, 1)
}

func TestReconcileIsIdempotent(t *testing.T) {
	folder := setup(t, "adder", map[string]string{
		"README.md":          "![a](wavedrom_Ab3F9.svg) ![b](wavedrom_Cd4G0.svg) ![a](wavedrom_Ab3F9.svg)\n",
		"wavedrom_Ab3F9.svg": image,
		"wavedrom_Cd4G0.svg": image,
	})

	_, err := Reconcile(folder)
	require.NoError(t, err)
	assert.Equal(t, "![a](adder_wavedrom_0.svg) ![b](adder_wavedrom_1.svg) ![a](adder_wavedrom_0.svg)\n", read(t, folder, "README.md"))

	second, err := Reconcile(folder)
	require.NoError(t, err)
	assert.Empty(t, second.Normalized)
	assert.Empty(t, second.Deleted)
	assert.Empty(t, second.Renamed)
	assert.Empty(t, second.Rewritten)
	assert.Empty(t, second.Changes())
}

func TestReconcileNormalizesEveryImage(t *testing.T) {
	folder := setup(t, "adder", map[string]string{
		"README.md":     "# Adder\n",
		"schematic.svg": image,
	})

	result, err := Reconcile(folder)
	require.NoError(t, err)
	assert.Len(t, result.Normalized, 1)
	assert.FileExists(t, filepath.Join(folder.Path, "schematic.svg"), "only WaveDrom names are eligible for deletion")
	assert.Contains(t, read(t, folder, "schematic.svg"), svg.Background)
}

func TestReconcileReplacesLeftoverTarget(t *testing.T) {
	folder := setup(t, "adder", map[string]string{
		"README.md":            "![new](wavedrom_Ab3F9.svg)\n",
		"wavedrom_Ab3F9.svg":   `<svg id="new"></svg>`,
		"adder_wavedrom_0.svg": `<svg id="leftover"></svg>`,
	})

	_, err := Reconcile(folder)
	require.NoError(t, err)
	assert.Contains(t, read(t, folder, "adder_wavedrom_0.svg"), `id="new"`)
}

func TestReconcileMergesAllDocuments(t *testing.T) {
	folder := setup(t, "adder", map[string]string{
		"README.md":          "wavedrom_Bbbbb.svg\n",
		"extra.md":           "wavedrom_Aaaaa.svg wavedrom_Bbbbb.svg\n",
		"wavedrom_Aaaaa.svg": image,
		"wavedrom_Bbbbb.svg": image,
	})

	result, err := Reconcile(folder)
	require.NoError(t, err)

	// README.md sorts before extra.md.
	assert.Equal(t, []Rename{
		{Old: "wavedrom_Bbbbb.svg", New: "adder_wavedrom_0.svg"},
		{Old: "wavedrom_Aaaaa.svg", New: "adder_wavedrom_1.svg"},
	}, result.Renamed)
	assert.Equal(t, "adder_wavedrom_1.svg adder_wavedrom_0.svg\n", read(t, folder, "extra.md"))
	assert.Equal(t, "adder_wavedrom_0.svg\n", read(t, folder, "README.md"))
}

func TestReconcileMissingReferencedDiagram(t *testing.T) {
	folder := setup(t, "adder", map[string]string{
		"README.md": "![gone](wavedrom_Gone1.svg)\n",
	})

	result, err := Reconcile(folder)
	require.NoError(t, err)
	assert.Empty(t, result.Renamed)
	assert.Equal(t, "![gone](wavedrom_Gone1.svg)\n", read(t, folder, "README.md"))
}

func TestUsedDiagrams(t *testing.T) {
	used := UsedDiagrams([]string{
		"wavedrom_BBBBB.svg wavedrom_AAAAA.svg wavedrom_short.svg.bak wavedrom_toolong1.svg",
		"wavedrom_AAAAA.svg wavedrom_CCCCC.svg",
	})
	assert.Equal(t, []string{"wavedrom_BBBBB.svg", "wavedrom_AAAAA.svg", "wavedrom_short.svg", "wavedrom_CCCCC.svg"}, used)
}

func TestRewriteReferencesIsPlainSubstringReplace(t *testing.T) {
	doc := "see wavedrom_Ab3F9.svg and old_wavedrom_Ab3F9.svg"
	out := RewriteReferences(doc, []Rename{
		{Old: "wavedrom_Ab3F9.svg", New: "adder_wavedrom_0.svg"},
		{Old: "same", New: "same"},
	})
	assert.Equal(t, "see adder_wavedrom_0.svg and old_adder_wavedrom_0.svg", out)
}

func TestProcess(t *testing.T) {
	folder := setup(t, "adder", map[string]string{
		"README.md":          "wavedrom_Ab3F9.svg\n",
		"wavedrom_Ab3F9.svg": image,
	})

	result := Process(folder)
	assert.Equal(t, component.Succeeded, result.Status)
	assert.Len(t, result.Changes, 3)
}
