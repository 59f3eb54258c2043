package view

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects the view encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a format name to a Format. The empty string is JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown view format %q", s)
}

// Encode writes views to w in format.
func Encode(w io.Writer, format Format, views []*Owner) error {
	switch format {
	case FormatJSON, "":
		return EncodeJSON(w, views)
	case FormatYAML:
		return EncodeYAML(w, views)
	}
	return fmt.Errorf("unknown view format %q", format)
}

// EncodeJSON writes views as an indented JSON array.
func EncodeJSON(w io.Writer, views []*Owner) error {
	if views == nil {
		views = []*Owner{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("encode json view: %w", err)
	}
	return nil
}

// EncodeYAML writes views as a YAML sequence.
func EncodeYAML(w io.Writer, views []*Owner) error {
	if views == nil {
		views = []*Owner{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("encode yaml view: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml view: %w", err)
	}
	return nil
}
