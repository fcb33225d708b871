package vocabfilter

import (
	"fmt"
	"io"

	"github.com/heartmarshall/vocabhelper/internal/domain"
)

// previewTranslationLen is the number of runes of a translation shown in a preview.
const previewTranslationLen = 50

// WritePreview prints the first n records as a numbered list with their tags.
func WritePreview(w io.Writer, records []domain.VocabRecord, n int) error {
	if n > len(records) {
		n = len(records)
	}
	for i := 0; i < n; i++ {
		rec := records[i]
		if _, err := fmt.Fprintf(w, "%d. %s - %s...\n   Tags: %s\n",
			i+1, rec.Word, truncateRunes(rec.Translation, previewTranslationLen), rec.Tag); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
	}
	return nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
