package component

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JakubFranek/Nexys-A7-Lab/util"
	"github.com/pkg/errors"
)

// LegacyDocPath returns the path of the `<name>.md` documentation file older folders use.
func (f Folder) LegacyDocPath() string {
	return filepath.Join(f.Path, f.Name+".md")
}

// RenameDocumentation moves `<name>.md` to the canonical documentation file when the folder
// holds `<name>.vhd`. An existing canonical file is replaced.
func RenameDocumentation(f Folder) Result {
	if !util.FileExists(f.SourcePath()) || !util.FileExists(f.LegacyDocPath()) {
		return Result{Status: Skipped}
	}
	if err := os.Rename(f.LegacyDocPath(), f.DocPath()); err != nil {
		return Result{Status: Failed, Err: errors.Wrapf(err, "renaming '%s'", f.LegacyDocPath())}
	}
	return Result{
		Status:  Succeeded,
		Changes: []string{fmt.Sprintf("Renamed '%s' to '%s'.", f.LegacyDocPath(), f.DocPath())},
	}
}
