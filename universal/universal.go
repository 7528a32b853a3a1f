// Package universal parses a mechanism configuration of either supported
// layout. The layout is detected from the input: directories and root files
// carrying a camp-files list go to the legacy (version 0) reader, anything
// else to the strict version 1 parser.
package universal

import (
	"log/slog"
	"os"

	"github.com/reoring/mechconf"
	"github.com/reoring/mechconf/document"
	"github.com/reoring/mechconf/legacy"
)

// Layout names the configuration layout a path was read as.
type Layout int

const (
	Strict Layout = iota
	Legacy
)

func (l Layout) String() string {
	if l == Legacy {
		return "v0"
	}
	return "v1"
}

// Options configures Parse. FailFast only affects the strict path; the
// legacy reader always stops a file at its first failing record.
type Options struct {
	FailFast bool
	Logger   *slog.Logger
}

func normalizeOpts(opts []Options) Options {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	return opt
}

// Result is the outcome of Parse under either layout.
type Result struct {
	Layout    Layout
	Mechanism *mechconf.Mechanism
	Errors    mechconf.Issues
}

// OK reports whether a mechanism was produced without issues.
func (r Result) OK() bool { return r.Mechanism != nil && len(r.Errors) == 0 }

// Detect reports the layout of the configuration at path. An unreadable
// file is reported as Strict together with the load error.
func Detect(path string) (Layout, error) {
	l, _, err := detect(path)
	return l, err
}

// detect also hands back the decoded strict document so it is read once.
func detect(path string) (Layout, *document.Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Strict, nil, err
	}
	if info.IsDir() {
		return Legacy, nil, nil
	}
	root, err := document.Load(path)
	if err != nil {
		return Strict, nil, err
	}
	if legacy.IsRoot(root) {
		return Legacy, nil, nil
	}
	return Strict, root, nil
}

// Parse detects the layout at path and parses it. The only non-nil error is
// a *legacy.UnknownTypeError; the Result then holds what was read before it.
func Parse(path string, opts ...Options) (Result, error) {
	opt := normalizeOpts(opts)
	layout, root, err := detect(path)
	opt.Logger.Debug("layout detected", slog.String("path", path), slog.String("layout", layout.String()))

	switch {
	case layout == Legacy:
		res, err := legacy.Parse(path, legacy.Options{Logger: opt.Logger})
		return Result{Layout: Legacy, Mechanism: res.Mechanism, Errors: res.Errors}, err
	case err != nil:
		// reread so the strict parser classifies the failure
		res := mechconf.Parse(path, mechconf.Options{FailFast: opt.FailFast, Logger: opt.Logger})
		return Result{Layout: Strict, Mechanism: res.Mechanism, Errors: res.Errors}, nil
	default:
		res := mechconf.ParseNode(root, mechconf.Options{FailFast: opt.FailFast, Logger: opt.Logger})
		return Result{Layout: Strict, Mechanism: res.Mechanism, Errors: res.Errors}, nil
	}
}
