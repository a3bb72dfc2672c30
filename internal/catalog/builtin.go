package catalog

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// BuiltinComponents returns the components that ship with a catalog, sorted.
func BuiltinComponents() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Builtin loads the catalog shipped for component (case-insensitive).
func Builtin(component string) (*Catalog, error) {
	name := strings.ToLower(component)
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no built-in catalog for %q (available: %s)", component, strings.Join(BuiltinComponents(), ", "))
	}
	return Parse("builtin:"+name, data)
}
