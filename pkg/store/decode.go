package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"tableflip.dev/picklist/pkg/lists"
)

// Format names a record file encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("store: unknown format %q", s)
	}
}

// Decode reads either a single list or a sequence of lists from r.
func Decode(r io.Reader, format Format) ([]lists.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("store: read: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if format == FormatAuto {
		format = FormatYAML
		if trimmed[0] == '[' || trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	var records []lists.Record
	switch format {
	case FormatJSON:
		if trimmed[0] == '[' {
			err = json.Unmarshal(trimmed, &records)
		} else {
			var rec lists.Record
			if err = json.Unmarshal(trimmed, &rec); err == nil {
				records = []lists.Record{rec}
			}
		}
	case FormatYAML:
		var node yaml.Node
		if err = yaml.Unmarshal(trimmed, &node); err != nil {
			break
		}
		doc := &node
		if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
			doc = doc.Content[0]
		}
		if doc.Kind == yaml.SequenceNode {
			err = doc.Decode(&records)
		} else {
			var rec lists.Record
			if err = doc.Decode(&rec); err == nil {
				records = []lists.Record{rec}
			}
		}
	default:
		return nil, fmt.Errorf("store: unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", format, err)
	}
	return records, nil
}
