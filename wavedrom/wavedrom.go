// Package wavedrom reconciles the WaveDrom diagrams of a component folder with its
// documentation: unreferenced diagrams are deleted, referenced ones are renamed to
// `<component>_wavedrom_<index>.svg` and the references are rewritten.
package wavedrom

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/svg"
	"github.com/JakubFranek/Nexys-A7-Lab/util"
	"github.com/pkg/errors"
)

const (
	docPattern   = "*.md"
	imagePattern = "*.svg"
)

// NamePattern matches the file names WaveDrom exports diagrams under.
var NamePattern = regexp.MustCompile(`wavedrom_[A-Za-z0-9]{5}\.svg`)

var exactNamePattern = regexp.MustCompile(`^` + NamePattern.String() + `$`)

// CanonicalName returns the name of the `index`-th diagram used by `componentName`.
func CanonicalName(componentName string, index int) string {
	return fmt.Sprintf("%s_wavedrom_%d.svg", componentName, index)
}

// Rename is a single performed old -> new rename.
type Rename struct {
	Old string
	New string
}

// Result lists everything a reconciliation changed in one folder.
type Result struct {
	Normalized []string
	Deleted    []string
	Renamed    []Rename
	Rewritten  []string
}

// Changes describes every change in a human readable form.
func (r Result) Changes() []string {
	changes := []string{}
	for _, file := range r.Normalized {
		changes = append(changes, fmt.Sprintf("Added white background to SVG: %s", file))
	}
	for _, file := range r.Deleted {
		changes = append(changes, fmt.Sprintf("Removed unused SVG: %s", file))
	}
	for _, rename := range r.Renamed {
		changes = append(changes, fmt.Sprintf("Renamed SVG: %s -> %s", rename.Old, rename.New))
	}
	for _, file := range r.Rewritten {
		changes = append(changes, fmt.Sprintf("Updated SVG references in Markdown file: %s", file))
	}
	return changes
}

// UsedDiagrams returns the distinct diagram names referenced by `docs`, in order of first
// appearance over all documents.
func UsedDiagrams(docs []string) []string {
	used := util.NewUniqueList[string]()
	for _, doc := range docs {
		for _, name := range NamePattern.FindAllString(doc, -1) {
			used.Add(name)
		}
	}
	return used.Values()
}

// RewriteReferences replaces every old name with its new name in `doc`. The replacement is a
// plain substring replacement.
func RewriteReferences(doc string, renames []Rename) string {
	for _, rename := range renames {
		if rename.Old == rename.New {
			continue
		}
		doc = strings.ReplaceAll(doc, rename.Old, rename.New)
	}
	return doc
}

// Reconcile runs the full reconciliation on `folder`.
func Reconcile(folder component.Folder) (Result, error) {
	var result Result

	docNames, err := util.ListFiles(folder.Path, docPattern)
	if err != nil {
		return result, err
	}
	docs := make([]string, 0, len(docNames))
	for _, name := range docNames {
		content, err := os.ReadFile(filepath.Join(folder.Path, name))
		if err != nil {
			return result, errors.Wrapf(err, "reading '%s'", name)
		}
		docs = append(docs, string(content))
	}
	used := UsedDiagrams(docs)
	usedSet := util.NewUniqueList[string]()
	for _, name := range used {
		usedSet.Add(name)
	}

	images, err := util.ListFiles(folder.Path, imagePattern)
	if err != nil {
		return result, err
	}
	for _, image := range images {
		path := filepath.Join(folder.Path, image)
		if err := normalize(path, &result); err != nil {
			return result, err
		}
	}

	unused := util.FilteredSlice(images, func(image string) bool {
		return exactNamePattern.MatchString(image) && !usedSet.Contains(image)
	})
	for _, image := range unused {
		path := filepath.Join(folder.Path, image)
		if err := os.Remove(path); err != nil {
			return result, errors.Wrapf(err, "removing unused '%s'", path)
		}
		result.Deleted = append(result.Deleted, path)
	}

	for index, name := range used {
		oldPath := filepath.Join(folder.Path, name)
		newName := CanonicalName(folder.Name, index)
		newPath := filepath.Join(folder.Path, newName)

		if !util.FileExists(oldPath) {
			log.Warning("'%s' references '%s', which does not exist.\n", folder.Path, name)
			continue
		}
		if err := normalize(oldPath, &result); err != nil {
			return result, err
		}
		if oldPath == newPath {
			continue
		}
		if util.FileExists(newPath) {
			if referenced(docs, newName) {
				log.Warning("Overwriting '%s', which is still referenced by the documentation.\n", newPath)
			}
			if err := os.Remove(newPath); err != nil {
				return result, errors.Wrapf(err, "removing '%s'", newPath)
			}
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			return result, errors.Wrapf(err, "renaming '%s'", oldPath)
		}
		result.Renamed = append(result.Renamed, Rename{Old: name, New: newName})
	}

	if len(result.Renamed) == 0 {
		return result, nil
	}
	for i, name := range docNames {
		path := filepath.Join(folder.Path, name)
		written, err := util.UpdateFile(path, []byte(RewriteReferences(docs[i], result.Renamed)))
		if err != nil {
			return result, err
		}
		if written {
			result.Rewritten = append(result.Rewritten, path)
		}
	}
	return result, nil
}

// Process adapts Reconcile to a per-folder pass.
func Process(folder component.Folder) component.Result {
	result, err := Reconcile(folder)
	if err != nil {
		return component.Result{Status: component.Failed, Err: err, Changes: result.Changes()}
	}
	return component.Result{Status: component.Succeeded, Changes: result.Changes()}
}

func normalize(path string, result *Result) error {
	changed, err := svg.AddBackground(path)
	if err != nil {
		return err
	}
	if changed {
		result.Normalized = append(result.Normalized, path)
	}
	return nil
}

func referenced(docs []string, name string) bool {
	for _, doc := range docs {
		if strings.Contains(doc, name) {
			return true
		}
	}
	return false
}
