package annotation

import (
	"regexp"
	"strings"
)

const commentMarker = "--"

const pslTag = "psl"

var pslTagPattern = regexp.MustCompile(`--\s*psl\b`)

// Normalize strips ordinary line comments from VHDL source text. Comment blocks opened by a
// `-- psl` tag are kept: the tag and the comment markers of the following lines are removed
// and the pieces are joined into one logical line, up to and including the first line that
// contains a `;`.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	insideBlock := false
	block := []string{}
	for _, line := range lines {
		if loc := pslTagPattern.FindStringIndex(line); loc != nil && !insideBlock {
			insideBlock = true
			line = line[:loc[0]] + line[loc[1]:]
		}

		if !insideBlock {
			cleaned = append(cleaned, stripComment(line))
			continue
		}

		piece := strings.TrimSpace(strings.ReplaceAll(line, commentMarker, ""))
		if piece != "" {
			block = append(block, piece)
		}
		if strings.Contains(piece, ";") {
			insideBlock = false
			cleaned = append(cleaned, strings.Join(block, " "))
			block = block[:0]
		}
	}
	if insideBlock && len(block) > 0 {
		cleaned = append(cleaned, strings.Join(block, " "))
	}

	return strings.Join(cleaned, "\n")
}

// stripComment removes a trailing `--` comment unless it is followed by the psl tag.
func stripComment(line string) string {
	offset := 0
	for {
		idx := strings.Index(line[offset:], commentMarker)
		if idx < 0 {
			return line
		}
		idx += offset
		rest := strings.TrimLeft(line[idx+len(commentMarker):], " \t\r\f\v")
		if !strings.HasPrefix(rest, pslTag) {
			return line[:idx]
		}
		offset = idx + len(commentMarker)
	}
}
