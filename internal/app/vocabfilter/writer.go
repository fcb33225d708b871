package vocabfilter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/heartmarshall/vocabhelper/internal/domain"
)

// encodeRecords renders records as a JSON array indented by two spaces.
// Non-ASCII text and HTML characters are written literally. A nil slice
// is encoded as an empty array.
func encodeRecords(records []domain.VocabRecord) ([]byte, error) {
	if records == nil {
		records = []domain.VocabRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeRecords replaces the file at path with the encoded records.
func writeRecords(path string, records []domain.VocabRecord) (err error) {
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
