// Package sheet loads named style rules authored in JSON, YAML or TOML
// documents, expanding shorthand properties so that consumers only ever
// see longhands.
package sheet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/benoitkugler/inlinestyle/shorthand"
	"github.com/benoitkugler/inlinestyle/style"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a style sheet document.
type Format uint8

const (
	JSON Format = iota + 1
	YAML
	TOML
)

// Sheet stores style rules by name, with shorthand properties already
// expanded.
type Sheet map[string]style.Dict

// Load decodes the document read from `r` and expands the shorthand
// properties of each rule. Rules must be mappings of property names to
// values.
func Load(r io.Reader, format Format) (Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var document map[string]any
	switch format {
	case JSON:
		err = json.Unmarshal(data, &document)
	case YAML:
		err = yaml.Unmarshal(data, &document)
	case TOML:
		err = toml.Unmarshal(data, &document)
	default:
		err = fmt.Errorf("unsupported format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid style sheet: %w", err)
	}

	ex := shorthand.New()
	out := make(Sheet, len(document))
	for name, rule := range document {
		value, err := style.FromInterface(rule)
		if err != nil {
			return nil, fmt.Errorf("invalid rule %s: %w", name, err)
		}
		declarations, ok := value.(style.Dict)
		if !ok {
			return nil, fmt.Errorf("invalid rule %s: expected a mapping, got %T", name, rule)
		}
		out[name] = ex.Expand(declarations).(style.Dict)
	}
	return out, nil
}

// LoadFile loads the style sheet at `path`, choosing the format from the
// file extension (.json, .yaml, .yml or .toml).
func LoadFile(path string) (Sheet, error) {
	var format Format
	switch ext := filepath.Ext(path); ext {
	case ".json":
		format = JSON
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	default:
		return nil, fmt.Errorf("unsupported style sheet extension %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, format)
}
