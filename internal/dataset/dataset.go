// Package dataset provides an in-memory tabular structure backed by CSV
// files. Cell text is preserved exactly; computed columns are appended to the
// right of the original ones.
package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/tphakala/stem-volumes/internal/errors"
)

// ErrOutputExists is returned when the output file already exists and
// overwriting is not enabled.
var ErrOutputExists = errors.NewStd("output file already exists")

// Dataset is an ordered table of string cells with a named header row.
type Dataset struct {
	Columns []string
	Rows    [][]string

	columnIndex map[string]int
}

// New creates an empty dataset with the given columns.
func New(columns []string) *Dataset {
	ds := &Dataset{Columns: columns}
	ds.reindex()
	return ds
}

func (d *Dataset) reindex() {
	d.columnIndex = make(map[string]int, len(d.Columns))
	for i, name := range d.Columns {
		d.columnIndex[name] = i
	}
}

// ColumnIndex returns the index of the named column, or -1 when absent.
func (d *Dataset) ColumnIndex(name string) int {
	if d.columnIndex == nil {
		d.reindex()
	}
	if i, ok := d.columnIndex[name]; ok {
		return i
	}
	return -1
}

// AppendColumn adds a new column with empty cells to every row and returns
// its index.
func (d *Dataset) AppendColumn(name string) int {
	d.Columns = append(d.Columns, name)
	for i := range d.Rows {
		d.Rows[i] = append(d.Rows[i], "")
	}
	d.reindex()
	return len(d.Columns) - 1
}

// AppendRow adds a row. The row must have one cell per column.
func (d *Dataset) AppendRow(row []string) {
	d.Rows = append(d.Rows, row)
}

// Line returns the CSV line number of the given row index. The header is
// line 1, so the first record is line 2.
func Line(rowIndex int) int {
	return rowIndex + 2
}

// ReadCSV loads a dataset from a CSV file. Every record must have the same
// number of fields as the header.
func ReadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.Newf("empty CSV file: %s", path).
				Category(errors.CategoryFileParsing).
				Context("path", path).
				Build()
		}
		return nil, errors.New(err).
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}

	ds := New(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader reports ragged rows as csv.ErrFieldCount with
			// line information.
			return nil, errors.New(err).
				Category(errors.CategoryFileParsing).
				Context("path", path).
				Build()
		}
		ds.AppendRow(record)
	}

	return ds, nil
}

// WriteCSV serializes the dataset to a CSV file. It refuses to overwrite an
// existing file unless overwrite is set, to avoid accidental data loss.
func (d *Dataset) WriteCSV(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf("%w: %s", ErrOutputExists, path).
				Category(errors.CategoryFileIO).
				Context("path", path).
				Build()
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(d.Columns); err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	for _, row := range d.Rows {
		if err := writer.Write(row); err != nil {
			return errors.New(err).
				Category(errors.CategoryFileIO).
				Context("path", path).
				Build()
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}

	return nil
}
