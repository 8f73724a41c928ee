package annotation

import (
	"regexp"
	"strings"
)

const escapedPipe = "&#124;"

var (
	// [label :] assert (condition) [report "text"] [severity level]
	sourceAssertPattern = regexp.MustCompile(
		`(?:(?P<label>\w+)\s*:\s*)?\bassert\s*\((?P<condition>[^\n"]*)\)\s*(?:report\s*"(?P<report>.*?)"\s*)?(?:severity\s*(?P<severity>\w+))?`)

	// [label :] assert condition [report "text"] [severity level] ;
	propertyAssertPattern = regexp.MustCompile(
		`(?:(?P<label>\w+)\s*:\s*)?\bassert\b\s*(?P<condition>[^\n";]*?)\s*(?:report\s*"(?P<report>[^"\n]*)"\s*)?(?:severity\s*(?P<severity>\w+)\s*)?;`)

	// assume condition, up to the next quote, terminator or newline
	assumePattern = regexp.MustCompile(`\bassume\b\s*(?P<condition>[^\n";]*)`)

	// [label :] cover {condition};
	coverPattern = regexp.MustCompile(`(?:(?P<label>\w+)\s*:\s*)?\bcover\s*\{(?P<condition>[^\n"{}]*)\};`)
)

// Extract returns every annotation of `kind` found in the normalized source text followed by
// the ones found in the property text. Either text may be empty.
func Extract(kind Kind, source, property string) []Annotation {
	annotations := []Annotation{}
	annotations = append(annotations, extractFrom(kind, Source, source)...)
	annotations = append(annotations, extractFrom(kind, Property, property)...)
	return annotations
}

func extractFrom(kind Kind, origin Origin, text string) []Annotation {
	if text == "" {
		return nil
	}

	if origin == Property {
		text = foldStatements(text)
	}

	pattern := patternFor(kind, origin)
	annotations := []Annotation{}
	for _, match := range pattern.FindAllStringSubmatch(text, -1) {
		annotation := Annotation{Kind: kind, Origin: origin}
		for i, name := range pattern.SubexpNames() {
			value := strings.TrimSpace(match[i])
			switch name {
			case "label":
				annotation.Label = value
			case "condition":
				annotation.Condition = value
			case "report":
				annotation.Report = value
			case "severity":
				annotation.Severity = value
			}
		}
		annotation.Condition = renderCondition(kind, origin, annotation.Condition)
		annotations = append(annotations, annotation)
	}
	return annotations
}

// foldStatements drops `--` comments and joins the property text into one line, so statements
// spanning several lines match like single line ones.
func foldStatements(text string) string {
	var fields []string
	for _, line := range strings.Split(text, "\n") {
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		fields = append(fields, strings.Fields(line)...)
	}
	return strings.Join(fields, " ")
}

func patternFor(kind Kind, origin Origin) *regexp.Regexp {
	switch kind {
	case Assertion:
		if origin == Property {
			return propertyAssertPattern
		}
		return sourceAssertPattern
	case Assumption:
		return assumePattern
	default:
		return coverPattern
	}
}

func renderCondition(kind Kind, origin Origin, condition string) string {
	if kind == Assumption && origin == Source {
		condition = stripOuterParens(condition)
	}
	condition = strings.ReplaceAll(condition, "|", escapedPipe)
	if kind == Cover && origin == Source {
		condition = "{" + condition + "};"
	}
	return condition
}

// stripOuterParens removes one pair of parentheses enclosing the whole condition.
// "(a and (b))" becomes "a and (b)" while "(a) or (b)" is left untouched.
func stripOuterParens(condition string) string {
	if !strings.HasPrefix(condition, "(") || !strings.HasSuffix(condition, ")") {
		return condition
	}
	depth := 0
	for i, c := range condition {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(condition)-1 {
				return condition
			}
		}
	}
	if depth != 0 {
		return condition
	}
	return strings.TrimSpace(condition[1 : len(condition)-1])
}
