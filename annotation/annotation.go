// Package annotation extracts verification annotations (assertions, assumptions and cover
// points) from VHDL sources and PSL property files and regenerates the Markdown tables that
// document them.
package annotation

import (
	"fmt"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/pkg/errors"
)

// Kind is the kind of a verification annotation.
type Kind int

const (
	Assertion Kind = iota
	Assumption
	Cover
)

// Kinds lists all kinds in the order documentation sections are regenerated.
var Kinds = []Kind{Cover, Assumption, Assertion}

type kindInfo struct {
	name    string
	heading string
	// alwaysEmitted sections are written even when no annotation was found.
	alwaysEmitted bool
}

var kinds = map[Kind]kindInfo{
	Assertion:  {"assertions", "## Assertions", false},
	Assumption: {"assumptions", "## Assumptions", true},
	Cover:      {"covers", "## Covers", false},
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Heading returns the Markdown heading line that starts the section of this kind.
func (k Kind) Heading() string {
	return kinds[k].heading
}

func (k Kind) emitted(count int) bool {
	return count > 0 || kinds[k].alwaysEmitted
}

// ParseKind converts a user supplied name ("asserts", "assertions", "assumes", ...) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "assert", "asserts", "assertion", "assertions":
		return Assertion, nil
	case "assume", "assumes", "assumption", "assumptions":
		return Assumption, nil
	case "cover", "covers":
		return Cover, nil
	}
	return 0, errors.Errorf("unknown annotation kind '%s'", name)
}

// Origin is the kind of file an annotation was extracted from.
type Origin int

const (
	Source Origin = iota
	Property
)

// Marker returns the file extension shown in the documentation tables.
func (o Origin) Marker() string {
	if o == Property {
		return component.PropertyExt
	}
	return component.SourceExt
}

// Annotation is a single verification statement. Report and Severity are only ever set for
// assertions; Label is never set for assumptions.
type Annotation struct {
	Kind      Kind
	Label     string
	Condition string
	Report    string
	Severity  string
	Origin    Origin
}
