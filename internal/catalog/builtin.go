package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtins returns the roadmaps shipped with the binary, ordered by file name.
func Builtins() ([]*DefinitionFile, error) {
	names, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	defs := make([]*DefinitionFile, 0, len(names))
	for _, name := range names {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading builtin %s: %w", path.Base(name), err)
		}
		def, err := ParseDefinition(data, FormatYAML)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", path.Base(name), err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
