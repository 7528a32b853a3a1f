package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format selects the decoder for raw bytes.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// FormatForPath picks the decoder from the file extension. Anything that is
// not .json is read as YAML, which also accepts JSON text.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes data in the given format.
func Parse(data []byte, f Format) (*Node, error) {
	if f == FormatJSON {
		return FromJSON(bytes.NewReader(data))
	}
	return FromYAML(bytes.NewReader(data))
}

// Load reads and decodes the file at path. A missing file yields an error
// matching fs.ErrNotExist.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	n, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return n, nil
}
