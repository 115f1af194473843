// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by LoadFile for an unsupported extension.
var ErrUnknownFormat = errors.New("graphio: unknown file format")

// DecodeJSON reads one JSON Description from r.
func DecodeJSON(r io.Reader) (Description, error) {
	var d Description
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Description{}, fmt.Errorf("graphio: decode json: %w", err)
	}

	return d, nil
}

// DecodeYAML reads one YAML Description from r.
func DecodeYAML(r io.Reader) (Description, error) {
	var d Description
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return Description{}, fmt.Errorf("graphio: decode yaml: %w", err)
	}

	return d, nil
}

// EncodeJSON writes d as indented JSON.
func EncodeJSON(w io.Writer, d Description) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(d)
}

// EncodeYAML writes d as YAML.
func EncodeYAML(w io.Writer, d Description) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}

	return enc.Close()
}

// LoadFile reads a Description, choosing the decoder by extension:
// .json, .yaml/.yml, or .graph/.txt for the text expression form.
func LoadFile(path string) (Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return Description{}, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(f)
	case ".yaml", ".yml":
		return DecodeYAML(f)
	case ".graph", ".txt":
		data, err := io.ReadAll(f)
		if err != nil {
			return Description{}, fmt.Errorf("graphio: %w", err)
		}
		return ParseExpr(string(data))
	}

	return Description{}, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}
