package domain

import (
	"encoding/csv"
	"errors"
	"io"

	"go.trai.ch/zerr"
)

// TableReader streams a tab-separated table whose first row is a header.
type TableReader struct {
	r       *csv.Reader
	columns map[string]int
}

// NewTableReader reads the header of the table in r.
func NewTableReader(r io.Reader) (*TableReader, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, zerr.With(ErrTableMalformed, "reason", "missing header")
		}
		return nil, zerr.Wrap(err, ErrTableMalformed.Error())
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	return &TableReader{r: cr, columns: columns}, nil
}

// Require fails unless every named column is present.
func (t *TableReader) Require(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return zerr.With(ErrTableMalformed, "missing_column", name)
		}
	}
	return nil
}

// Next returns the next row, or io.EOF after the last one. The returned
// slice is reused by the following call.
func (t *TableReader) Next() ([]string, error) {
	row, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, zerr.Wrap(err, ErrTableMalformed.Error())
	}
	return row, nil
}

// Field returns the named column of row, or "" when absent.
func (t *TableReader) Field(row []string, name string) string {
	i, ok := t.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
