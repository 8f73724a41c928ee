// Package svg normalizes SVG diagrams so they render on dark backgrounds.
package svg

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/util"
	"github.com/pkg/errors"
)

// Background is the element filling the whole canvas in white.
const Background = `<rect width="100%" height="100%" fill="white"/>`

var rootTagPattern = regexp.MustCompile(`<svg[^>]*>`)

// WithBackground returns `content` with the white background inserted right after the opening
// tag of the root element. Content that already has the background, or has no root element,
// is returned unchanged.
func WithBackground(content string) string {
	if strings.Contains(content, Background) {
		return content
	}
	loc := rootTagPattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[1]] + Background + content[loc[1]:]
}

// AddBackground normalizes the SVG file at `path` in place. Reports whether the file changed.
func AddBackground(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "reading '%s'", path)
	}
	return util.UpdateFile(path, []byte(WithBackground(string(content))))
}

// Process normalizes every SVG file directly inside `folder`.
func Process(folder component.Folder) component.Result {
	files, err := util.ListFiles(folder.Path, "*.svg")
	if err != nil {
		return component.Result{Status: component.Failed, Err: err}
	}
	if len(files) == 0 {
		return component.Result{Status: component.Skipped}
	}

	result := component.Result{Status: component.Succeeded}
	for _, name := range files {
		file := filepath.Join(folder.Path, name)
		changed, err := AddBackground(file)
		if err != nil {
			result.Status = component.Failed
			result.Err = err
			return result
		}
		if changed {
			result.Changes = append(result.Changes, fmt.Sprintf("Added white background to '%s'.", file))
		}
	}
	return result
}
