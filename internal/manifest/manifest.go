// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package manifest reads and rewrites package.json files. Documents keep the
// key order of the source file so a rewritten manifest only differs from the
// template where a field was changed.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// FileName is the manifest file name inside a template directory.
const FileName = "package.json"

// ErrNotObject is returned when the manifest is valid JSON but not an object.
var ErrNotObject = errors.New("manifest must be a JSON object")

type field struct {
	key   string
	value json.RawMessage
}

// Document is a top-level JSON object with ordered keys. Nested values are
// kept as raw JSON and only re-indented on output.
type Document struct {
	fields []field
}

// Parse decodes a manifest. Duplicate keys keep the position of their first
// occurrence and the value of their last.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	doc := &Document{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected manifest token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse manifest field %q: %w", key, err)
		}
		doc.Set(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after manifest object")
	}

	return doc, nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.fields))
	for i, f := range d.fields {
		keys[i] = f.key
	}
	return keys
}

// Get returns the raw value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	for _, f := range d.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// Set replaces the value under key in place, or appends it when absent.
func (d *Document) Set(key string, value json.RawMessage) {
	for i := range d.fields {
		if d.fields[i].key == key {
			d.fields[i].value = value
			return
		}
	}
	d.fields = append(d.fields, field{key: key, value: value})
}

// Name returns the string value of the name field, or "" when it is missing
// or not a string.
func (d *Document) Name() string {
	raw, ok := d.Get("name")
	if !ok {
		return ""
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return ""
	}
	return name
}

// SetName overwrites the name field.
func (d *Document) SetName(name string) error {
	raw, err := json.Marshal(name)
	if err != nil {
		return fmt.Errorf("failed to encode manifest name: %w", err)
	}
	d.Set("name", raw)
	return nil
}

// Marshal encodes the document with two-space indentation and a trailing
// newline.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if len(d.fields) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, f := range d.fields {
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, fmt.Errorf("failed to encode manifest key %q: %w", f.key, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		if err := json.Indent(&buf, f.value, "  ", "  "); err != nil {
			return nil, fmt.Errorf("failed to encode manifest field %q: %w", f.key, err)
		}
		if i < len(d.fields)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}
