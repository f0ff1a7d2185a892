// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects how rows are split into fields.
type Format int

const (
	// CSV is comma-separated with RFC 4180 quoting.
	CSV Format = iota

	// TSV is tab-separated without quoting.
	TSV
)

const utf8BOM = "\ufeff"

// rowSource yields raw field slices.
type rowSource interface {
	Read() ([]string, error)
}

// tsvSource splits lines on tabs. IMDb rows can exceed bufio.Scanner's
// default token size, so lines are read with ReadString.
type tsvSource struct {
	r *bufio.Reader
}

func (s *tsvSource) Read() ([]string, error) {
	for {
		line, err := s.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			continue
		}
		return strings.Split(line, "\t"), nil
	}
}

// Row is one data row bound to its header.
type Row struct {
	Line   int
	fields []string
	index  map[string]int
}

// Get returns the value of a column, or "" when the column is absent or the
// row is short.
func (r Row) Get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Has reports whether the header contains column.
func (r Row) Has(column string) bool {
	_, ok := r.index[column]
	return ok
}

// Reader iterates over the rows of a flat file with a header line.
type Reader struct {
	source string
	src    rowSource
	closer io.Closer
	header []string
	index  map[string]int
	line   int
}

// Open opens path and validates that the header carries every required
// column. The caller must Close the reader.
func Open(path string, format Format, required ...string) (*Reader, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	r, err := NewReader(f, path, format, required...)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader wraps an io.Reader. source names the input in errors.
func NewReader(in io.Reader, source string, format Format, required ...string) (*Reader, error) {
	var src rowSource
	switch format {
	case TSV:
		src = &tsvSource{r: bufio.NewReaderSize(in, 1<<20)}
	default:
		cr := csv.NewReader(bufio.NewReader(in))
		cr.FieldsPerRecord = -1
		cr.ReuseRecord = false
		src = cr
	}

	header, err := src.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaMismatchError{Source: source, Missing: required}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", source, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		header[i] = h
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Source: source, Missing: missing}
	}

	return &Reader{
		source: source,
		src:    src,
		header: header,
		index:  index,
		line:   1,
	}, nil
}

// Source returns the name used in errors.
func (r *Reader) Source() string {
	return r.source
}

// Header returns the trimmed header fields.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next row, or io.EOF when the input is exhausted.
func (r *Reader) Next() (Row, error) {
	fields, err := r.src.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		return Row{}, fmt.Errorf("%s line %d: %w", r.source, r.line+1, err)
	}
	r.line++
	return Row{Line: r.line, fields: fields, index: r.index}, nil
}

// ForEach calls fn for every remaining row and stops at the first error.
func (r *Reader) ForEach(fn func(Row) error) error {
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

// ParseErr builds a *ParseError for a field of row.
func (r *Reader) ParseErr(row Row, column string, err error) *ParseError {
	return &ParseError{
		Source: r.source,
		Line:   row.Line,
		Column: column,
		Value:  row.Get(column),
		Err:    err,
	}
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
