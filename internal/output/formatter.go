package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Formatter writes a value in one output format.
type Formatter interface {
	FormatToWriter(w io.Writer, v any) error
}

// YAMLFormatter formats values as YAML output.
type YAMLFormatter struct{}

// FormatToWriter writes YAML output to a writer.
func (f *YAMLFormatter) FormatToWriter(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(v)
}

// JSONFormatter formats values as JSON output.
type JSONFormatter struct{}

// FormatToWriter writes JSON output to a writer.
func (f *JSONFormatter) FormatToWriter(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// GetFormatter returns the formatter for a format.
func GetFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Write renders v to w in the given format.
func Write(w io.Writer, format Format, v any) error {
	f, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return f.FormatToWriter(w, v)
}

// Render returns v rendered in the given format.
func Render(format Format, v any) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
