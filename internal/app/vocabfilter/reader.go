package vocabfilter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// row is one data line of the dataset, addressed by header name.
type row struct {
	columns map[string]int
	fields  []string
}

// get returns the value of the named column, or "" when the column is
// unknown or the line is shorter than the header.
func (r row) get(name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// rowReader streams rows from a comma-separated source whose first line
// names the columns.
type rowReader struct {
	csv     *csv.Reader
	columns map[string]int
}

// newRowReader reads the header line. The source must be valid UTF-8;
// a leading byte order mark is dropped. An empty source yields no rows.
func newRowReader(r io.Reader) (*rowReader, error) {
	src := transform.NewReader(r, transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder()))

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return &rowReader{csv: reader}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	return &rowReader{csv: reader, columns: columns}, nil
}

// next returns the following row or io.EOF when the source is exhausted.
func (rr *rowReader) next() (row, error) {
	if rr.columns == nil {
		return row{}, io.EOF
	}

	fields, err := rr.csv.Read()
	if err == io.EOF {
		return row{}, io.EOF
	}
	if err != nil {
		return row{}, fmt.Errorf("read row: %w", err)
	}

	return row{columns: rr.columns, fields: fields}, nil
}
