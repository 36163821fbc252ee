package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrRoadmapNotFound is returned when no roadmap matches a lookup.
var ErrRoadmapNotFound = errors.New("roadmap not found")

// SourceBuiltin marks entries embedded in the binary.
const SourceBuiltin = "builtin"

// Entry is one resolvable roadmap with its listing position.
type Entry struct {
	Index  int    // 1-based position in List order
	Source string // SourceBuiltin or the file path
	Def    *DefinitionFile
}

// Catalog merges the built-in roadmaps with roadmap files from Dir.
// A file whose id matches a built-in replaces it in place.
type Catalog struct {
	Dir string
}

func New(dir string) *Catalog {
	return &Catalog{Dir: dir}
}

// List returns built-ins first, then directory files sorted by name.
// Files that fail to parse or validate are skipped.
func (c *Catalog) List() ([]Entry, error) {
	builtins, err := Builtins()
	if err != nil {
		return nil, fmt.Errorf("loading builtin roadmaps: %w", err)
	}

	entries := make([]Entry, 0, len(builtins))
	byID := make(map[string]int, len(builtins))
	for _, def := range builtins {
		byID[def.ID] = len(entries)
		entries = append(entries, Entry{Source: SourceBuiltin, Def: def})
	}

	files, err := c.files()
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		def, err := LoadDefinition(file)
		if err != nil || len(ValidateDefinition(def)) > 0 {
			continue // skip invalid roadmaps
		}
		entry := Entry{Source: file, Def: def}
		if i, ok := byID[def.ID]; ok {
			entries[i] = entry
			continue
		}
		byID[def.ID] = len(entries)
		entries = append(entries, entry)
	}

	for i := range entries {
		entries[i].Index = i + 1
	}
	return entries, nil
}

// Resolve finds a roadmap by id, file stem, title (all case-insensitive)
// or by its 1-based index from List.
func (c *Catalog) Resolve(name string) (*Entry, error) {
	input := strings.TrimSpace(name)
	if input == "" {
		return nil, fmt.Errorf("%w: empty roadmap name", ErrRoadmapNotFound)
	}

	entries, err := c.List()
	if err != nil {
		return nil, err
	}

	for i := range entries {
		e := &entries[i]
		if strings.EqualFold(e.Def.ID, input) || strings.EqualFold(e.Def.Title, input) {
			return e, nil
		}
		if e.Source != SourceBuiltin {
			stem := strings.TrimSuffix(filepath.Base(e.Source), filepath.Ext(e.Source))
			if strings.EqualFold(stem, input) {
				return e, nil
			}
		}
	}

	if n, err := strconv.Atoi(input); err == nil {
		for i := range entries {
			if entries[i].Index == n {
				return &entries[i], nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrRoadmapNotFound, name)
}

func (c *Catalog) files() ([]string, error) {
	if c.Dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(c.Dir); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(c.Dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}
