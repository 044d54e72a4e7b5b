package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"semgen/domain/core"
	"semgen/domain/sem"
	"semgen/internal/errors"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of the written SEM document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultOutputFile is the output path used when none is configured
const DefaultOutputFile = "sem_config.json"

// ParseFormat accepts "json", "yaml" or "yml" in any case
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, s)
}

// DefaultPath returns the conventional output file name for a format
func (f Format) DefaultPath() string {
	if f == FormatYAML {
		return "sem_config.yaml"
	}
	return DefaultOutputFile
}

// Encode serializes the document as indented, human-readable text
func Encode(cfg sem.Config, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.EncodeError(string(FormatJSON), err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.EncodeError(string(FormatYAML), err)
		}
		if err := enc.Close(); err != nil {
			return nil, errors.EncodeError(string(FormatYAML), err)
		}
		return buf.Bytes(), nil
	}
	return nil, errors.EncodeError(string(format), core.ErrUnsupportedFormat)
}
