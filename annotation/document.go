package annotation

import (
	"fmt"
	"os"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/util"
	"github.com/pkg/errors"
)

var (
	// ErrMissingSourceFile is returned when a component folder has no `<name>.vhd` file.
	ErrMissingSourceFile = errors.New("missing source file")
	// ErrMissingDocumentation is returned when a component folder has no documentation file.
	ErrMissingDocumentation = errors.New("missing documentation")
)

// Inputs holds the texts annotations are extracted from.
type Inputs struct {
	// Source is the normalized VHDL source.
	Source string
	// Property is the raw property file, empty if the component has none.
	Property string
}

// ReadInputs reads and normalizes the source and property files of `folder`.
func ReadInputs(folder component.Folder) (Inputs, error) {
	source, err := os.ReadFile(folder.SourcePath())
	if os.IsNotExist(err) {
		return Inputs{}, errors.Wrapf(ErrMissingSourceFile, "'%s'", folder.SourcePath())
	}
	if err != nil {
		return Inputs{}, errors.Wrapf(err, "reading '%s'", folder.SourcePath())
	}

	inputs := Inputs{Source: Normalize(string(source))}
	if util.FileExists(folder.PropertyPath()) {
		property, err := os.ReadFile(folder.PropertyPath())
		if err != nil {
			return Inputs{}, errors.Wrapf(err, "reading '%s'", folder.PropertyPath())
		}
		inputs.Property = string(property)
	}
	return inputs, nil
}

// Document regenerates the sections of `kinds`, in order, in the documentation file of
// `folder`. The file is replaced atomically and only when its content changes.
func Document(folder component.Folder, kinds ...Kind) component.Result {
	if !folder.HasSources() {
		if util.FileExists(folder.DocPath()) {
			return component.Result{
				Status: component.Skipped,
				Err:    errors.Wrapf(ErrMissingSourceFile, "'%s' is documented but has no %s files", folder.Path, component.SourceExt),
			}
		}
		log.Debug("No %s files found in '%s'. Skipping it...\n", component.SourceExt, folder.Path)
		return component.Result{Status: component.Skipped}
	}

	inputs, err := ReadInputs(folder)
	if err != nil {
		return component.Result{Status: component.Failed, Err: err}
	}

	docPath := folder.DocPath()
	if !util.FileExists(docPath) {
		return component.Result{
			Status: component.Skipped,
			Err:    errors.Wrapf(ErrMissingDocumentation, "'%s'", docPath),
		}
	}
	doc, err := os.ReadFile(docPath)
	if err != nil {
		return component.Result{Status: component.Failed, Err: errors.Wrapf(err, "reading '%s'", docPath)}
	}

	updated := string(doc)
	for _, kind := range kinds {
		annotations := Extract(kind, inputs.Source, inputs.Property)
		log.Debug("Found %d %s in '%s'.\n", len(annotations), kind, folder.Name)
		updated = UpdateSection(updated, kind, annotations)
	}

	written, err := util.UpdateFile(docPath, []byte(updated))
	if err != nil {
		return component.Result{Status: component.Failed, Err: err}
	}

	result := component.Result{Status: component.Succeeded}
	if written {
		result.Changes = append(result.Changes, fmt.Sprintf("Updated %v tables in '%s'.", kinds, docPath))
	}
	return result
}
