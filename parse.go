package mechconf

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/reoring/mechconf/document"
)

var mechanismSchema = Schema{
	Required: []string{keyVersion, keyName, keySpecies, keyPhases, keyReactions},
}

// Parse reads a strict-format mechanism file. The format is picked from the
// extension: .json files are read as JSON, anything else as YAML.
//
// Result.Mechanism is nil when the file is missing, cannot be decoded or
// has the wrong top-level shape. Otherwise it holds everything that parsed,
// alongside the issues found.
func Parse(path string, opts ...Options) Result {
	opt := normalizeOpts(opts)
	root, err := document.Load(path)
	if err != nil {
		return loadFailure(path, err, opt.Logger)
	}
	return parseRoot(root, opt)
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte, f document.Format, opts ...Options) Result {
	opt := normalizeOpts(opts)
	root, err := document.Parse(data, f)
	if err != nil {
		return loadFailure("", err, opt.Logger)
	}
	return parseRoot(root, opt)
}

// ParseNode parses an already decoded document tree.
func ParseNode(root *document.Node, opts ...Options) Result {
	return parseRoot(root, normalizeOpts(opts))
}

func loadFailure(path string, err error, log *slog.Logger) Result {
	st := MalformedDocument
	if errors.Is(err, fs.ErrNotExist) {
		st = FileNotFound
	}
	var dup *document.DuplicateKeyError
	it := Issue{Status: st, Path: "/", Message: err.Error(), Cause: err}
	if errors.As(err, &dup) {
		it.Line, it.Column = dup.Line, dup.Col
	}
	log.Debug("mechanism load failed", slog.String("path", path), slog.String("status", string(st)))
	return Result{Errors: Issues{it}}
}

// IsNotExist reports whether a Result failed because its file was missing.
func (r Result) IsNotExist() bool {
	return r.Mechanism == nil && len(r.Errors) == 1 && r.Errors[0].Status == FileNotFound
}

func parseRoot(root *document.Node, opt Options) Result {
	log := opt.Logger
	p := Root()
	if iss := mechanismSchema.Validate(root, p); len(iss) > 0 {
		log.Debug("top-level schema rejected", slog.Int("issues", len(iss)))
		return Result{Errors: iss}
	}

	// keys were validated above
	r := &Reader{n: root, p: p}
	m := &Mechanism{
		Version: r.OptionalString(keyVersion, ""),
		Name:    r.OptionalString(keyName, ""),
	}
	if r.Failed() {
		return Result{Errors: r.Issues()}
	}
	if !SupportsVersion(m.Version) {
		vn, _ := root.Get(keyVersion)
		it := p.Field(keyVersion).Issue(vn, InvalidVersion,
			"version %q is not supported (want major %s)", m.Version, SupportedMajorVersion)
		log.Debug("unsupported version", slog.String("version", m.Version))
		return Result{Mechanism: m, Errors: Issues{it}}
	}

	var all Issues
	stop := func(stage string, iss Issues) bool {
		log.Debug("stage parsed", slog.String("stage", stage), slog.Int("issues", len(iss)))
		all = AppendIssues(all, iss...)
		return opt.FailFast && len(iss) > 0
	}

	sn, _ := root.Get(keySpecies)
	species, iss := parseSpecies(sn, p.Field(keySpecies))
	m.Species = species
	if stop(keySpecies, iss) {
		return Result{Mechanism: m, Errors: all}
	}

	pn, _ := root.Get(keyPhases)
	phases, iss := parsePhases(pn, p.Field(keyPhases), species)
	m.Phases = phases
	if stop(keyPhases, iss) {
		return Result{Mechanism: m, Errors: all}
	}

	rn, _ := root.Get(keyReactions)
	reactions, iss := parseReactions(rn, p.Field(keyReactions), newCatalog(species, phases))
	m.Reactions = reactions
	stop(keyReactions, iss)

	if len(all) == 0 {
		all = nil
	}
	log.Debug("mechanism parsed",
		slog.String("name", m.Name),
		slog.Int("species", len(m.Species)),
		slog.Int("phases", len(m.Phases)),
		slog.Int("reactions", m.Reactions.Len()),
		slog.Int("issues", len(all)))
	return Result{Mechanism: m, Errors: all}
}

// ParseFile is a convenience wrapper returning the mechanism or the issues
// as an error.
func ParseFile(path string, opts ...Options) (*Mechanism, error) {
	res := Parse(path, opts...)
	return res.Mechanism, res.Err()
}
