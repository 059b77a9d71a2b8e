package macro

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a script file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

// FormatFor picks the format from the file extension. Anything that is not
// YAML or TOML is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// tomlScript is the TOML document shape: an array of [[commands]] tables.
type tomlScript struct {
	Commands []Command `toml:"commands"`
}

// Load reads and decodes the script at path.
func Load(path string) ([]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	cmds, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return cmds, nil
}

// Parse decodes a script. Every command must have a name.
func Parse(data []byte, format Format) ([]Command, error) {
	var cmds []Command
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cmds)
	case FormatTOML:
		var doc tomlScript
		err = toml.Unmarshal(data, &doc)
		cmds = doc.Commands
	default:
		err = json.Unmarshal(data, &cmds)
	}
	if err != nil {
		return nil, err
	}

	for i, c := range cmds {
		if c.Name == "" {
			return nil, fmt.Errorf("command %d has no name", i+1)
		}
	}
	return cmds, nil
}
