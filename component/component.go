package component

import (
	"io/fs"
	"path/filepath"

	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/util"
	"github.com/pkg/errors"
)

const (
	// SourceExt is the extension of hardware-description source files.
	SourceExt = ".vhd"
	// PropertyExt is the extension of property files.
	PropertyExt = ".psl"
	// DocFileName is the canonical documentation file of a component.
	DocFileName = "README.md"
)

// Folder is a directory representing one hardware design unit.
type Folder struct {
	Path string
	Name string
}

// New returns the component folder rooted at `path`.
func New(path string) Folder {
	return Folder{Path: path, Name: filepath.Base(path)}
}

// SourcePath returns the path of the `<name>.vhd` source file.
func (f Folder) SourcePath() string {
	return filepath.Join(f.Path, f.Name+SourceExt)
}

// PropertyPath returns the path of the optional `<name>.psl` property file.
func (f Folder) PropertyPath() string {
	return filepath.Join(f.Path, f.Name+PropertyExt)
}

// DocPath returns the path of the component's documentation file.
func (f Folder) DocPath() string {
	return filepath.Join(f.Path, DocFileName)
}

// HasSources reports whether the folder holds any source file at all.
func (f Folder) HasSources() bool {
	files, err := util.ListFiles(f.Path, "*"+SourceExt)
	return err == nil && len(files) > 0
}

// Walk returns every directory below `root` (excluding `root` itself) in lexical order.
// Nesting depth is irrelevant: each directory is a candidate component folder.
func Walk(root string) ([]Folder, error) {
	if !util.DirExists(root) {
		return nil, errors.Errorf("root directory '%s' does not exist", root)
	}

	folders := []Folder{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable directory only affects its own subtree.
			log.Warning("Cannot read '%s': %s. Skipping it...\n", path, err)
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() && path != root {
			folders = append(folders, New(path))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking '%s'", root)
	}
	return folders, nil
}
