// Package reader materializes external text data into tables, with
// optional column selection.
package reader

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"go-colsearch/pkg/column"
	"go-colsearch/pkg/table"
	"go-colsearch/pkg/types"
	"go-colsearch/util/logger"
)

// Field declares one csv column, in file order.
type Field struct {
	Name string
	Meta types.DataTypeMeta
}

// ReadCSV parses headerless csv input under the declared schema and
// returns a table of the materialized columns. Empty fields become
// nulls; skipped columns are never parsed.
func ReadCSV(r io.Reader, schema []Field, opts Options) (*table.Table, error) {
	if len(schema) == 0 {
		return nil, errors.New("empty schema")
	}

	cols := make([]*column.Column, 0, len(schema))
	selected := make([]int, 0, len(schema))
	for i, f := range schema {
		if !opts.includes(f.Name) {
			continue
		}
		col := column.New(f.Name, f.Meta)
		if opts.sizeGuess > 0 {
			col.Reserve(opts.sizeGuess)
		}
		cols = append(cols, col)
		selected = append(selected, i)
	}
	if len(cols) == 0 {
		return nil, errors.New("no columns selected")
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(schema)

	rows := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read csv row %d", rows)
		}

		for ci, fi := range selected {
			raw := record[fi]
			if raw == "" {
				cols[ci].AppendNull()
				continue
			}

			v, err := types.Parse(schema[fi].Meta, raw)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column '%s'", rows, schema[fi].Name)
			}
			cols[ci].Append(v)
		}
		rows++
	}

	logger.L.Debugf("csv read: %d rows, %d of %d columns materialized", rows, len(cols), len(schema))
	return table.New(cols...)
}
