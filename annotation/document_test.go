package annotation

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const adderSource = `library ieee;
use ieee.std_logic_1164.all;

entity adder is
end entity;

architecture rtl of adder is
begin
  -- sum output
  chk: assert (a = b) report "mismatch" severity error;
  -- psl c_carry: cover {carry_in; carry_out};
end architecture;
`

const adderProperty = `vunit adder_vu(adder) {
  p1 : assume a_valid;
  p_sum : assert always (sum = a + b);
  c_zero : cover {sum = 0};
}
`

func writeComponent(t *testing.T, files map[string]string) component.Folder {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "adder")
	require.NoError(t, os.Mkdir(dir, 0775))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0664))
	}
	return component.New(dir)
}

func readDoc(t *testing.T, folder component.Folder) string {
	t.Helper()
	data, err := os.ReadFile(folder.DocPath())
	require.NoError(t, err)
	return string(data)
}

func TestDocumentWritesAllTables(t *testing.T) {
	folder := writeComponent(t, map[string]string{
		"adder.vhd": adderSource,
		"adder.psl": adderProperty,
		"README.md": "# Adder\n\nAdds two numbers.\n",
	})

	result := Document(folder, Kinds...)
	require.Equal(t, component.Succeeded, result.Status, "%v", result.Err)
	assert.Len(t, result.Changes, 1)

	doc := readDoc(t, folder)
	assert.Contains(t, doc, "## Covers\n\n| Label | Condition |\n|-------|-----------|\n| c_carry | {carry_in; carry_out}; |\n| c_zero | sum = 0 |\n")
	assert.Contains(t, doc, "## Assumptions\n\n| Condition | File |\n|-----------|------|\n| a_valid | .psl |\n")
	assert.Contains(t, doc, "| chk | a = b | mismatch | error | .vhd |\n")
	assert.Contains(t, doc, "| p_sum | always (sum = a + b) |  |  | .psl |\n")
}

func TestDocumentIsIdempotent(t *testing.T) {
	folder := writeComponent(t, map[string]string{
		"adder.vhd": adderSource,
		"adder.psl": adderProperty,
		"README.md": "# Adder\n",
	})

	require.Equal(t, component.Succeeded, Document(folder, Kinds...).Status)
	first := readDoc(t, folder)

	second := Document(folder, Kinds...)
	require.Equal(t, component.Succeeded, second.Status)
	assert.Empty(t, second.Changes)
	assert.Equal(t, first, readDoc(t, folder))
}

func TestDocumentWithoutAnnotations(t *testing.T) {
	folder := writeComponent(t, map[string]string{
		"adder.vhd": "entity adder is end entity;\n",
		"README.md": "# Adder\n",
	})

	require.Equal(t, component.Succeeded, Document(folder, Kinds...).Status)

	doc := readDoc(t, folder)
	assert.NotContains(t, doc, "## Assertions")
	assert.NotContains(t, doc, "## Covers")
	assert.Contains(t, doc, "## Assumptions\n\n| Condition | File |\n|-----------|------|\n")
}

func TestDocumentMissingSourceFile(t *testing.T) {
	folder := writeComponent(t, map[string]string{
		"other.vhd": adderSource,
		"README.md": "# Adder\n",
	})

	result := Document(folder, Assertion)
	assert.Equal(t, component.Failed, result.Status)
	assert.True(t, errors.Is(result.Err, ErrMissingSourceFile))
}

func TestDocumentMissingDocumentation(t *testing.T) {
	folder := writeComponent(t, map[string]string{"adder.vhd": adderSource})

	result := Document(folder, Assertion)
	assert.Equal(t, component.Skipped, result.Status)
	assert.True(t, errors.Is(result.Err, ErrMissingDocumentation))
	assert.NoFileExists(t, folder.DocPath())
}

func TestDocumentSkipsFoldersWithoutSources(t *testing.T) {
	folder := writeComponent(t, map[string]string{"notes.txt": "scratch\n"})

	result := Document(folder, Assertion)
	assert.Equal(t, component.Skipped, result.Status)
	assert.NoError(t, result.Err)
}

func TestDocumentWarnsAboutDocumentedFoldersWithoutSources(t *testing.T) {
	folder := writeComponent(t, map[string]string{"README.md": "# Adder\n"})

	result := Document(folder, Assertion)
	assert.Equal(t, component.Skipped, result.Status)
	assert.True(t, errors.Is(result.Err, ErrMissingSourceFile))
	assert.Equal(t, "# Adder\n", readDoc(t, folder))
}
