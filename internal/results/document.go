package results

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Document is a results file: metadata plus the raw run records produced by
// the execution harness.
//
// Timestamp stays a plain string because the schema only requires one; the
// engine never interprets it, and a harness writing a loose format must not
// turn a schema-valid document into a decode failure.
type Document struct {
	BenchID   string `json:"bench_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Results   []Row  `json:"results"`
}

// Load reads, validates, and decodes a results document. Files ending in
// ".gz" are decompressed transparently. Schema violations are reported as a
// single error listing every violation.
func Load(path string) (*Document, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	if errs := Validate(data); len(errs) > 0 {
		return nil, fmt.Errorf("results: %s is not a valid results document:\n  %s",
			path, strings.Join(errs, "\n  "))
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("results: decode %s: %w", path, err)
	}

	if doc.BenchID == "" {
		doc.BenchID = benchIDFromPath(path)
	}
	return doc, nil
}

// ReadFile reads a results file, decompressing gzip when the path ends in ".gz".
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("results: gzip %s: %w", path, err)
		}
		defer gz.Close() //nolint:errcheck
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("results: read %s: %w", path, err)
	}
	return data, nil
}

// Decode parses a results document from raw JSON bytes.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// benchIDFromPath derives a bench id from the file name when the document
// carries none: "runs/beam_2024.json.gz" becomes "beam_2024".
func benchIDFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base
}
