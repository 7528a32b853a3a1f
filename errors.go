package mechconf

import (
	"errors"
	"fmt"
	"strings"
)

// Status classifies a single parse issue.
type Status string

// Status codes (exported consts for IDE completion and type safety by convention)
const (
	Success                  Status = "success"
	InvalidKey               Status = "invalid_key"
	UnknownKey               Status = "unknown_key"
	RequiredKeyNotFound      Status = "required_key_not_found"
	MutuallyExclusiveOption  Status = "mutually_exclusive_option"
	InvalidFilePath          Status = "invalid_file_path"
	FileNotFound             Status = "file_not_found"
	ObjectTypeNotFound       Status = "object_type_not_found"
	InvalidVersion           Status = "invalid_version"
	DuplicateSpeciesDetected Status = "duplicate_species_detected"
	DuplicatePhasesDetected  Status = "duplicate_phases_detected"
	// Cross-reference checks
	PhaseRequiresUnknownSpecies                      Status = "phase_requires_unknown_species"
	ReactionRequiresUnknownSpecies                   Status = "reaction_requires_unknown_species"
	UnknownPhase                                     Status = "unknown_phase"
	RequestedAerosolSpeciesNotIncludedInAerosolPhase Status = "requested_aerosol_species_not_included_in_aerosol_phase"
	TooManyReactionComponents                        Status = "too_many_reaction_components"
	InvalidIonPair                                   Status = "invalid_ion_pair"
	// Document level
	InvalidType       Status = "invalid_type"
	MalformedDocument Status = "malformed_document"
)

// Statuses lists every status in declaration order.
var Statuses = []Status{
	Success, InvalidKey, UnknownKey, RequiredKeyNotFound, MutuallyExclusiveOption,
	InvalidFilePath, FileNotFound, ObjectTypeNotFound, InvalidVersion,
	DuplicateSpeciesDetected, DuplicatePhasesDetected, PhaseRequiresUnknownSpecies,
	ReactionRequiresUnknownSpecies, UnknownPhase, RequestedAerosolSpeciesNotIncludedInAerosolPhase,
	TooManyReactionComponents, InvalidIonPair, InvalidType, MalformedDocument,
}

func (s Status) String() string { return string(s) }

// Issue represents a single validation entry.
type Issue struct {
	Status  Status
	Path    string // JSON Pointer into the document (for example: /reactions/2/gas phase).
	Message string
	// Line and Column locate the offending node when the source format
	// reports positions (YAML). Zero otherwise.
	Line   int
	Column int
	Cause  error // Optional: underlying error.
}

func (it Issue) String() string {
	if it.Line > 0 {
		return fmt.Sprintf("%s at %s (%d:%d): %s", it.Status, it.Path, it.Line, it.Column, it.Message)
	}
	return fmt.Sprintf("%s at %s: %s", it.Status, it.Path, it.Message)
}

// Issues is an ordered collection of parse issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_phase at /reactions/0/gas phase
		fmt.Fprintf(b, "%s at %s", it.Status, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Has reports whether any issue carries status s.
func (iss Issues) Has(s Status) bool {
	for _, it := range iss {
		if it.Status == s {
			return true
		}
	}
	return false
}

// Statuses returns the status of each issue, in order.
func (iss Issues) Statuses() []Status {
	out := make([]Status, len(iss))
	for i, it := range iss {
		out[i] = it.Status
	}
	return out
}

// First returns the status of the first issue, or Success when empty.
func (iss Issues) First() Status {
	if len(iss) == 0 {
		return Success
	}
	return iss[0].Status
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
