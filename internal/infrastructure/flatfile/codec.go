// Package flatfile implements the delimited-text persistence layer: a codec
// for fixed-schema record sets and a store providing CRUD over named
// collections with full-file rewrite-on-write semantics.
package flatfile

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Schema is the ordered list of field names for one collection. The header
// row of every collection file is the schema.
type Schema []string

// Record is one row of a collection, keyed by field name. Fields absent from
// a row decode as empty strings.
type Record map[string]string

// Decode reads a record set from delimited text. The first row names the
// fields; rows missing trailing fields are filled with empty strings. An
// empty input yields an empty record set.
func Decode(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	records := []Record{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		rec := make(Record, len(header))
		for i, field := range header {
			if i < len(row) {
				rec[field] = row[i]
			} else {
				rec[field] = ""
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// Encode writes a record set as delimited text. The full schema header is
// always written, even for an empty set. Record fields outside the schema
// are silently dropped; this guards against stale in-memory shapes leaking
// into storage.
func Encode(w io.Writer, records []Record, schema Schema) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(schema); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(schema))
	for _, rec := range records {
		for i, field := range schema {
			row[i] = rec[field]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
