// Package legacy reads the version 0 (CAMP) mechanism layout: a root file
// listing data files under camp-files, each holding a flat camp-data
// sequence of upper-case typed records.
//
// Every species lives in a single implicit phase named GAS. Unlike the
// strict parser, processing of a data file stops at its first failing
// record; the remaining files are still read.
package legacy

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/reoring/mechconf"
	"github.com/reoring/mechconf/document"
)

// Options configures Parse.
type Options struct {
	// Logger receives debug records per data file. Nil means slog.Default().
	Logger *slog.Logger
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

// Result is the outcome of a legacy parse. Status is the first non-success
// status met, or mechconf.Success. An aborted parse always ends with
// mechconf.ObjectTypeNotFound.
type Result struct {
	Mechanism *mechconf.Mechanism
	Status    mechconf.Status
	Errors    mechconf.Issues
}

// OK reports whether a mechanism was produced without issues.
func (r Result) OK() bool { return r.Mechanism != nil && r.Status == mechconf.Success }

// UnknownTypeError is returned when a record carries a type tag the legacy
// format does not define. It aborts the parse.
type UnknownTypeError struct {
	Type string
	File string
	Path string
	// Line and Column locate the type tag in File, when known.
	Line   int
	Column int
}

// Issue renders e as an ObjectTypeNotFound issue.
func (e *UnknownTypeError) Issue() mechconf.Issue {
	return mechconf.Issue{
		Status:  mechconf.ObjectTypeNotFound,
		Path:    e.Path,
		Message: fmt.Sprintf("%s: unknown object type %q", e.File, e.Type),
		Line:    e.Line,
		Column:  e.Column,
		Cause:   e,
	}
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("legacy: unknown object type %q at %s in %s", e.Type, e.Path, e.File)
}

type recordParser func(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues

// parsers is the legacy dispatch table. MECHANISM is added by dispatch
// itself since it recurses.
var parsers = map[string]recordParser{
	"CHEM_SPEC":                   parseChemSpec,
	"RELATIVE_TOLERANCE":          parseRelativeTolerance,
	"PHOTOLYSIS":                  parsePhotolysis,
	"EMISSION":                    parseEmission,
	"FIRST_ORDER_LOSS":            parseFirstOrderLoss,
	"ARRHENIUS":                   parseArrhenius,
	"TROE":                        parseTroe,
	"TERNARY_CHEMICAL_ACTIVATION": parseTernaryChemicalActivation,
	"BRANCHED":                    parseBranched,
	"WENNBERG_NO_RO2":             parseBranched,
	"TUNNELING":                   parseTunneling,
	"WENNBERG_TUNNELING":          parseTunneling,
	"SURFACE":                     parseSurface,
	"USER_DEFINED":                parseUserDefined,
}

const typeMechanism = "MECHANISM"

// Types lists the recognised legacy type tags in sorted order.
func Types() []string {
	out := slices.Collect(maps.Keys(parsers))
	out = append(out, typeMechanism)
	slices.Sort(out)
	return out
}

// Parse reads the legacy configuration rooted at path, which may name the
// root file or the directory holding config.yaml or config.json.
//
// File discovery problems yield a Result with a nil Mechanism. The only
// non-nil error is *UnknownTypeError; the Result then carries what was read
// before it.
func Parse(path string, opts ...Options) (Result, error) {
	opt := normalizeOpts(opts)
	log := opt.Logger

	files, err := CampFiles(path)
	if err != nil {
		iss, _ := mechconf.AsIssues(err)
		log.Debug("camp file discovery failed", slog.String("path", path), slog.Int("issues", len(iss)))
		return Result{Status: iss.First(), Errors: iss}, nil
	}

	s := newState()
	res := Result{Status: mechconf.Success}
	for _, file := range files {
		iss, err := s.parseFile(file)
		if err != nil {
			res.Mechanism = s.finish()
			res.Errors = mechconf.AppendIssues(res.Errors, iss...)
			res.Status = mechconf.ObjectTypeNotFound
			var ute *UnknownTypeError
			if errors.As(err, &ute) {
				res.Errors = mechconf.AppendIssues(res.Errors, ute.Issue())
			}
			log.Debug("legacy parse aborted", slog.String("file", file), slog.String("error", err.Error()))
			return res, err
		}
		log.Debug("camp file parsed", slog.String("file", file), slog.Int("issues", len(iss)))
		if len(iss) > 0 {
			if res.Status == mechconf.Success {
				res.Status = iss.First()
			}
			res.Errors = mechconf.AppendIssues(res.Errors, iss...)
		}
	}
	res.Mechanism = s.finish()
	log.Debug("legacy mechanism parsed",
		slog.Int("files", len(files)),
		slog.Int("species", len(res.Mechanism.Species)),
		slog.Int("reactions", res.Mechanism.Reactions.Len()),
		slog.String("status", string(res.Status)))
	return res, nil
}

// finish appends the implicit gas phase.
func (s *state) finish() *mechconf.Mechanism {
	s.m.Phases = append(s.m.Phases, s.gasPhase())
	return s.m
}

func (s *state) parseFile(file string) (mechconf.Issues, error) {
	n, err := document.Load(file)
	if err != nil {
		return mechconf.Issues{mechconf.Root().Issue(nil, mechconf.MalformedDocument, "%v", err)}, nil
	}
	data, ok := n.Get(keyCampData)
	if !ok {
		return mechconf.Issues{mechconf.Root().Field(keyCampData).Issue(n, mechconf.RequiredKeyNotFound,
			"%s: required key %q not found", file, keyCampData)}, nil
	}
	iss, err := s.dispatch(data, mechconf.Root().Field(keyCampData))
	var ute *UnknownTypeError
	if errors.As(err, &ute) {
		ute.File = file
	}
	for i := range iss {
		iss[i].Message = file + ": " + iss[i].Message
	}
	return iss, err
}

// dispatch runs the parser of each record in seq and stops at the first
// record with issues.
func (s *state) dispatch(seq *document.Node, p mechconf.PathRef) (mechconf.Issues, error) {
	if !seq.IsSequence() {
		return mechconf.Issues{p.Issue(seq, mechconf.InvalidType, "expected a sequence, got %s", seq.Kind())}, nil
	}
	for i, rec := range seq.Items() {
		rp := p.Index(i)
		tn, ok := rec.Get(keyType)
		if !ok {
			return mechconf.Issues{rp.Field(keyType).Issue(rec, mechconf.RequiredKeyNotFound, "required key %q not found", keyType)}, nil
		}
		tag, err := tn.AsString()
		if err != nil {
			return mechconf.Issues{rp.Field(keyType).Issue(tn, mechconf.InvalidType, "%s: %v", keyType, err)}, nil
		}
		if tag == typeMechanism {
			iss, err := s.parseMechanism(rec, rp)
			if err != nil || len(iss) > 0 {
				return iss, err
			}
			continue
		}
		parse, ok := parsers[tag]
		if !ok {
			return nil, &UnknownTypeError{Type: tag, Path: rp.Pointer(), Line: tn.Line(), Column: tn.Column()}
		}
		if iss := parse(s, rec, rp); len(iss) > 0 {
			return iss, nil
		}
	}
	return nil, nil
}

func (s *state) parseMechanism(n *document.Node, p mechconf.PathRef) (mechconf.Issues, error) {
	r := mechconf.NewReader(n, p, mechanismSchema)
	name := r.OptionalString(keyName, "")
	if r.Failed() {
		return r.Issues(), nil
	}
	s.m.Name = name
	reactions, _ := n.Get(keyReactions)
	return s.dispatch(reactions, p.Field(keyReactions))
}
