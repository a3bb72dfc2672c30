package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a catalog file from disk, validates it, and returns the compiled catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, playerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes, validates and compiles catalog YAML. source names the input
// in errors.
func Parse(source string, data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, playerrors.NewParseError(source, extractLine(err), err)
	}

	return Build(&doc)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
