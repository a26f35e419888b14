package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// PayloadFormat names a supported request encoding.
type PayloadFormat string

const (
	FormatJSON PayloadFormat = "json"
	FormatYAML PayloadFormat = "yaml"
)

// FormatFromPath picks the payload format from a file extension,
// defaulting to JSON.
func FormatFromPath(path string) PayloadFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeCreateAssignment reads one request document. Unknown fields and
// trailing documents are rejected so typos never pass silently.
func DecodeCreateAssignment(r io.Reader, format PayloadFormat) (*CreateAssignmentRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Internal(err, "reading assignment payload")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, InvalidArgument("assignment payload is empty")
	}

	var req CreateAssignmentRequest
	switch format {
	case FormatJSON, "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, InvalidArgument("decoding JSON payload: %v", err)
		}
		if dec.More() {
			return nil, InvalidArgument("decoding JSON payload: unexpected data after request object")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&req); err != nil {
			return nil, InvalidArgument("decoding YAML payload: %v", err)
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, InvalidArgument("decoding YAML payload: expected a single document")
		}
	default:
		return nil, InvalidArgument("unsupported payload format %q", string(format))
	}
	return &req, nil
}
