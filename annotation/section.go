package annotation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpdateSection returns `doc` with the section of `kind` regenerated from `annotations`.
//
// A section starts at its heading line and extends to the next level 1 or 2 heading or to the
// end of the document. The whole section is replaced, the blank lines in front of it are
// collapsed into one, and a section that did not exist yet is appended at the end. Sections
// of kinds that are not always emitted are dropped when `annotations` is empty.
func UpdateSection(doc string, kind Kind, annotations []Annotation) string {
	lines := splitLines(doc)
	heading := kind.Heading()

	start, end := len(lines), len(lines)
	for i, line := range lines {
		if !isHeading(line, heading) {
			continue
		}
		start = i
		for j := i + 1; j < len(lines); j++ {
			if isSectionBoundary(lines[j]) {
				end = j
				break
			}
		}
		break
	}

	before := trimTrailingBlankLines(lines[:start])
	after := lines[end:]

	var b strings.Builder
	for _, line := range before {
		b.WriteString(line)
	}
	if len(before) > 0 && !strings.HasSuffix(before[len(before)-1], "\n") {
		b.WriteString("\n")
	}
	if kind.emitted(len(annotations)) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(heading + "\n\n")
		b.WriteString(Render(kind, annotations))
	}
	if len(after) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		for _, line := range after {
			b.WriteString(line)
		}
	}
	return b.String()
}

// splitLines splits `text` into lines, each keeping its line terminator.
// isHeading reports whether `line` opens the section titled `heading`. Trailing words are
// allowed, so "## Assertions table" still counts, but "## Assertionsx" does not.
func isHeading(line, heading string) bool {
	rest, found := strings.CutPrefix(strings.TrimSpace(line), heading)
	if !found {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return rest == "" || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func trimTrailingBlankLines(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isSectionBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "#" || trimmed == "##" ||
		strings.HasPrefix(trimmed, "# ") || strings.HasPrefix(trimmed, "## ")
}
