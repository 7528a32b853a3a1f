package legacy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/reoring/mechconf"
	"github.com/reoring/mechconf/document"
)

// Default root file names tried, in order, when the path is a directory.
const (
	DefaultConfigYAML = "config.yaml"
	DefaultConfigJSON = "config.json"
)

const (
	keyCampFiles = "camp-files"
	keyCampData  = "camp-data"
)

// IsRoot reports whether n looks like a legacy root document, that is a
// mapping carrying a camp-files list.
func IsRoot(n *document.Node) bool { return n.Has(keyCampFiles) }

// CampFiles resolves the list of data files named by the root configuration
// at path. Entries are relative to the directory holding the root file and
// may be doublestar globs (data/**/*.json). Every unresolvable entry is
// reported; the returned error is a mechconf.Issues.
func CampFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fileIssue(mechconf.FileNotFound, "/", "%s: %v", path, err)
	}
	dir, root := filepath.Dir(path), path
	if info.IsDir() {
		dir = path
		root = filepath.Join(dir, DefaultConfigYAML)
		if _, err := os.Stat(root); err != nil {
			root = filepath.Join(dir, DefaultConfigJSON)
		}
	}

	n, err := document.Load(root)
	if err != nil {
		st := mechconf.MalformedDocument
		if errors.Is(err, fs.ErrNotExist) {
			st = mechconf.FileNotFound
		}
		return nil, fileIssue(st, "/", "%v", err)
	}
	list, ok := n.Get(keyCampFiles)
	if !ok {
		return nil, fileIssue(mechconf.FileNotFound, "/"+keyCampFiles, "%s: no %q list", root, keyCampFiles)
	}
	if !list.IsSequence() {
		return nil, fileIssue(mechconf.InvalidType, "/"+keyCampFiles, "%s: expected a sequence, got %s", keyCampFiles, list.Kind())
	}

	p := mechconf.Root().Field(keyCampFiles)
	var files []string
	var iss mechconf.Issues
	for i, item := range list.Items() {
		entry, err := item.AsString()
		if err != nil {
			iss = mechconf.AppendIssues(iss, p.Index(i).Issue(item, mechconf.InvalidType, "%v", err))
			continue
		}
		found, err := resolveEntry(dir, entry)
		if err != nil {
			iss = mechconf.AppendIssues(iss, p.Index(i).Issue(item, mechconf.FileNotFound, "%s: %v", entry, err))
			continue
		}
		files = append(files, found...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	if len(files) == 0 {
		return nil, fileIssue(mechconf.FileNotFound, p.Pointer(), "%s: no data files listed", root)
	}
	return files, nil
}

func resolveEntry(dir, entry string) ([]string, error) {
	full := filepath.Join(dir, entry)
	if !containsGlob(entry) {
		if _, err := os.Stat(full); err != nil {
			return nil, err
		}
		return []string{full}, nil
	}
	matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fs.ErrNotExist
	}
	slices.Sort(matches)
	return matches, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func fileIssue(st mechconf.Status, path, format string, args ...any) mechconf.Issues {
	return mechconf.Issues{mechconf.At(path).Issue(nil, st, format, args...)}
}
