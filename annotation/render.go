package annotation

import (
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/util"
)

type column struct {
	title string
	value func(Annotation) string
}

var (
	labelColumn     = column{"Label", func(a Annotation) string { return a.Label }}
	conditionColumn = column{"Condition", func(a Annotation) string { return a.Condition }}
	reportColumn    = column{"Report", func(a Annotation) string { return a.Report }}
	severityColumn  = column{"Severity", func(a Annotation) string { return a.Severity }}
	fileColumn      = column{"File", func(a Annotation) string { return a.Origin.Marker() }}
)

var columns = map[Kind][]column{
	Assertion:  {labelColumn, conditionColumn, reportColumn, severityColumn, fileColumn},
	Assumption: {conditionColumn, fileColumn},
	Cover:      {labelColumn, conditionColumn},
}

// Render returns the Markdown table documenting `annotations`, which must all be of `kind`.
// Rows keep the order of `annotations`.
func Render(kind Kind, annotations []Annotation) string {
	cols := columns[kind]

	var b strings.Builder
	writeRow(&b, util.MappedSlice(cols, func(c column) string { return c.title }))
	b.WriteString("|" + strings.Join(util.MappedSlice(cols, func(c column) string {
		return strings.Repeat("-", len(c.title)+2)
	}), "|") + "|\n")
	for _, annotation := range annotations {
		writeRow(&b, util.MappedSlice(cols, func(c column) string {
			return strings.ReplaceAll(c.value(annotation), "|", escapedPipe)
		}))
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}
