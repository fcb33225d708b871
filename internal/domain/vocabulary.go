package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column names of the ECDICT dataset consumed by the vocabulary filter.
const (
	ColumnWord        = "word"
	ColumnPhonetic    = "phonetic"
	ColumnTranslation = "translation"
	ColumnDefinition  = "definition"
	ColumnExample     = "example"
	ColumnTag         = "tag"
)

// DefaultMinFields lists the fields a library entry is expected to carry.
// Only word and translation are enforced by the extraction gate.
var DefaultMinFields = []string{
	ColumnWord,
	ColumnPhonetic,
	ColumnTranslation,
	ColumnDefinition,
	ColumnExample,
}

// VocabRecord is a single word of an exported vocabulary library.
// All fields are trimmed; missing source values are empty strings, never null.
type VocabRecord struct {
	Word        string `json:"word"`
	Phonetic    string `json:"phonetic"`
	Translation string `json:"translation"`
	Definition  string `json:"definition"`
	Example     string `json:"example"`
	Tag         string `json:"tag"`
}

// IsComplete reports whether the record passes the acceptance gate:
// both word and translation must be non-empty.
func (r VocabRecord) IsComplete() bool {
	return r.Word != "" && r.Translation != ""
}

// NormalizeTag lowercases a raw tag field for marker matching using full
// Unicode case mapping ("İ" becomes "i" followed by U+0307).
// Markers are compared by substring, so separators are left untouched.
func NormalizeTag(tag string) string {
	return cases.Lower(language.Und).String(tag)
}

// TrimField removes leading and trailing whitespace from a dataset value.
// Besides unicode.IsSpace it strips the ASCII information separators
// U+001C..U+001F, which dataset exports treat as whitespace.
func TrimField(s string) string {
	return strings.TrimFunc(s, isFieldSpace)
}

func isFieldSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
