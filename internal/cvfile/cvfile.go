// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cvfile reads profile exports and writes renderer input files.
package cvfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cvforge/pkg/types"
)

// LoadRecord reads and decodes the profile export at path.
func LoadRecord(path string) (types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Record{}, fmt.Errorf("opening profile %s: %w", path, err)
	}
	defer f.Close()

	rec, err := DecodeRecord(f)
	if err != nil {
		return types.Record{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return rec, nil
}

// DecodeRecord decodes a profile export from r. Unknown fields are ignored.
func DecodeRecord(r io.Reader) (types.Record, error) {
	var rec types.Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return types.Record{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return rec, nil
}

// EncodeDocument writes doc to w as YAML. Keys keep the field order of
// types.Document and non-ASCII text is written as is.
func EncodeDocument(w io.Writer, doc types.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding CV document: %w", err)
	}
	return enc.Close()
}

// WriteDocument writes doc as YAML to path, creating parent directories.
func WriteDocument(doc types.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
