package report

import (
	"fmt"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	passStyle    = lipgloss.NewStyle().Width(14)
	countStyle   = lipgloss.NewStyle().Width(11).Align(lipgloss.Right)
	failedStyle  = countStyle.Foreground(lipgloss.Color("#FF6B6B"))
	skippedStyle = countStyle.Foreground(lipgloss.Color("#FFD93D"))
	okStyle      = countStyle.Foreground(lipgloss.Color("#6BCB77"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// PassTotals holds the per-status counts of one pass.
type PassTotals struct {
	Pass      string
	Succeeded int
	Skipped   int
	Failed    int
	Changes   int
}

// Totals groups the results of `summary` by pass, in the order the passes first ran.
func Totals(summary *component.Summary) []PassTotals {
	passes := util.NewUniqueList[string]()
	totals := map[string]*PassTotals{}
	for _, result := range summary.Results {
		if passes.Add(result.Pass) {
			totals[result.Pass] = &PassTotals{Pass: result.Pass}
		}
		t := totals[result.Pass]
		switch result.Status {
		case component.Succeeded:
			t.Succeeded++
		case component.Skipped:
			t.Skipped++
		case component.Failed:
			t.Failed++
		}
		t.Changes += len(result.Changes)
	}

	return util.MappedSlice(passes.Values(), func(pass string) PassTotals {
		return *totals[pass]
	})
}

func count(style lipgloss.Style, n int) string {
	if n == 0 {
		return countStyle.Render("0")
	}
	return style.Render(fmt.Sprint(n))
}

// Render draws a per-pass table of `summary`.
func Render(summary *component.Summary) string {
	lines := []string{
		headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			passStyle.Render("Pass"),
			countStyle.Render("Succeeded"),
			countStyle.Render("Skipped"),
			countStyle.Render("Failed"),
			countStyle.Render("Changes"),
		)),
	}
	for _, t := range Totals(summary) {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			passStyle.Render(t.Pass),
			count(okStyle, t.Succeeded),
			count(skippedStyle, t.Skipped),
			count(failedStyle, t.Failed),
			countStyle.Render(fmt.Sprint(t.Changes)),
		))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

type folderEntry struct {
	Folder  string   `yaml:"folder"`
	Status  string   `yaml:"status"`
	Error   string   `yaml:"error,omitempty"`
	Changes []string `yaml:"changes,omitempty"`
}

type passEntry struct {
	Pass      string        `yaml:"pass"`
	Succeeded int           `yaml:"succeeded"`
	Skipped   int           `yaml:"skipped"`
	Failed    int           `yaml:"failed"`
	Folders   []folderEntry `yaml:"folders"`
}

type document struct {
	OK     bool        `yaml:"ok"`
	Passes []passEntry `yaml:"passes"`
}

// Marshal encodes `summary` as YAML.
func Marshal(summary *component.Summary) ([]byte, error) {
	doc := document{OK: summary.OK()}
	index := map[string]int{}
	for _, t := range Totals(summary) {
		index[t.Pass] = len(doc.Passes)
		doc.Passes = append(doc.Passes, passEntry{
			Pass:      t.Pass,
			Succeeded: t.Succeeded,
			Skipped:   t.Skipped,
			Failed:    t.Failed,
		})
	}
	for _, result := range summary.Results {
		entry := folderEntry{
			Folder:  result.Folder.Path,
			Status:  result.Status.String(),
			Changes: result.Changes,
		}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}
		p := &doc.Passes[index[result.Pass]]
		p.Folders = append(p.Folders, entry)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode summary")
	}
	return data, nil
}

// WriteYAML writes the YAML summary to `path`.
func WriteYAML(path string, summary *component.Summary) error {
	data, err := Marshal(summary)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data); err != nil {
		return errors.Wrapf(err, "failed to write summary to '%s'", path)
	}
	return nil
}
