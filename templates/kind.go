package templates

import (
	"fmt"
	"strings"

	"github.com/zenibako/qlab-csv/issues"
)

// Kind names a template factory.
type Kind string

const (
	KindSimple Kind = "simple"
	KindX32    Kind = "x32"
)

// Kinds lists the known template kinds.
var Kinds = []Kind{KindSimple, KindX32}

// ParseKind maps a name to a Kind. "" maps to "", meaning detect.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindSimple, KindX32:
		return k, nil
	}
	return "", fmt.Errorf("unknown template %q (expected one of %s, %s)", s, KindSimple, KindX32)
}

// Detect guesses the template from the header row: any Mute, DCA or VCA
// column means the X32 template.
func Detect(headers []string) Kind {
	for _, h := range headers {
		if h == MuteColumn || strings.HasPrefix(h, "DCA") || strings.HasPrefix(h, "VCA") {
			return KindX32
		}
	}
	return KindSimple
}

// Build returns the template of the given kind for a plot with these headers.
// An empty kind is detected from the headers. It returns nil when the template
// can't be built; the reason is recorded in acc.
func Build(kind Kind, headers []string, patch int, acc *issues.Acceptor) *Template {
	if kind == "" {
		kind = Detect(headers)
	}
	switch kind {
	case KindX32:
		return BuildX32(headers, patch, acc)
	case KindSimple:
		t := Simple()
		t.Validate(headers, acc)
		return t
	}
	acc.Add(issues.Fatal, issues.WholeFile, string(kind), "UNKNOWN_TEMPLATE", "No template with this name")
	return nil
}
