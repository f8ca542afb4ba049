// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format of the descriptor
type Format string

const (
	// FormatJSON is indented JSON
	FormatJSON Format = "json"
	// FormatYAML is YAML with two space indentation
	FormatYAML Format = "yaml"
	// FormatModule is an ES module default-exporting the descriptor,
	// loadable by the generator as its config file
	FormatModule Format = "mjs"
)

const modulePrefix = "export default "

// ErrUnsupportedFormat is returned for formats other than json, yaml and mjs
var ErrUnsupportedFormat = errors.New("unsupported descriptor format")

// ErrTrailingContent is returned when anything but whitespace follows the
// descriptor
var ErrTrailingContent = errors.New("content after the descriptor")

// Extension returns the file extension written for the format
func (f Format) Extension() string {
	return string(f)
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".mjs", ".js":
		return FormatModule, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Marshal serializes the descriptor
func Marshal(d *Descriptor, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(d)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatModule:
		b, err := marshalJSON(d)
		if err != nil {
			return nil, err
		}
		return append([]byte(modulePrefix), b...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Parse decodes a descriptor. Unknown fields are rejected.
func Parse(b []byte, format Format) (*Descriptor, error) {
	d := &Descriptor{}
	switch format {
	case FormatJSON:
		if err := decodeJSON(b, d); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("failed to decode yaml descriptor: %w", err)
		}
		if err := dec.Decode(&yaml.Node{}); err != io.EOF {
			return nil, fmt.Errorf("failed to decode yaml descriptor: %w", trailing(err))
		}
	case FormatModule:
		s := strings.TrimSpace(string(b))
		if !strings.HasPrefix(s, modulePrefix) {
			return nil, fmt.Errorf("module descriptor must start with %q", strings.TrimSpace(modulePrefix))
		}
		s = strings.TrimSuffix(strings.TrimPrefix(s, modulePrefix), ";")
		if err := decodeJSON([]byte(s), d); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return d, nil
}

// ParseFile reads and decodes a descriptor file. The format follows the
// file extension.
func ParseFile(path string) (*Descriptor, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(b, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}
	return d, nil
}

// marshalJSON keeps labels like "Installation & Management" readable
func marshalJSON(d *Descriptor) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeJSON(b []byte, d *Descriptor) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(d); err != nil {
		return fmt.Errorf("failed to decode json descriptor: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("failed to decode json descriptor: %w", trailing(err))
	}
	return nil
}

func trailing(err error) error {
	if err == nil {
		return ErrTrailingContent
	}
	return fmt.Errorf("%w: %v", ErrTrailingContent, err)
}
