package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func summary() *component.Summary {
	adder := component.Folder{Path: "source/adder", Name: "adder"}
	fsm := component.Folder{Path: "source/fsm", Name: "fsm"}
	return &component.Summary{Results: []component.Result{
		{Pass: "wavedrom", Folder: adder, Status: component.Succeeded, Changes: []string{"Renamed 'a' to 'b'."}},
		{Pass: "wavedrom", Folder: fsm, Status: component.Succeeded},
		{Pass: "covers", Folder: adder, Status: component.Succeeded},
		{Pass: "covers", Folder: fsm, Status: component.Failed, Err: errors.New("missing source file")},
		{Pass: "assertions", Folder: fsm, Status: component.Skipped},
	}}
}

func TestTotals(t *testing.T) {
	assert.Equal(t, []PassTotals{
		{Pass: "wavedrom", Succeeded: 2, Changes: 1},
		{Pass: "covers", Succeeded: 1, Failed: 1},
		{Pass: "assertions", Skipped: 1},
	}, Totals(summary()))
}

func TestRender(t *testing.T) {
	out := Render(summary())
	for _, s := range []string{"Pass", "Succeeded", "Failed", "wavedrom", "covers", "assertions"} {
		assert.Contains(t, out, s)
	}
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.yaml")
	require.NoError(t, WriteYAML(path, summary()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.False(t, doc.OK)
	require.Len(t, doc.Passes, 3)
	assert.Equal(t, "covers", doc.Passes[1].Pass)
	assert.Equal(t, 1, doc.Passes[1].Failed)
	assert.Equal(t, folderEntry{Folder: "source/fsm", Status: "failed", Error: "missing source file"}, doc.Passes[1].Folders[1])
	assert.Equal(t, []string{"Renamed 'a' to 'b'."}, doc.Passes[0].Folders[0].Changes)
}

func TestEmptySummary(t *testing.T) {
	data, err := Marshal(&component.Summary{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "ok: true")
}
