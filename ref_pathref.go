package mechconf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/mechconf/document"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	// Issue creates an issue at this path, positioned at node n when n is
	// non-nil.
	Issue(n *document.Node, s Status, format string, args ...any) Issue
}

// Root returns the document root path.
func Root() PathRef { return &pathRef{} }

// At parses a JSON Pointer into a PathRef. Segments are taken as already
// escaped.
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(n *document.Node, s Status, format string, args ...any) Issue {
	return Issue{
		Status:  s,
		Path:    p.Pointer(),
		Message: fmt.Sprintf(format, args...),
		Line:    n.Line(),
		Column:  n.Column(),
	}
}
