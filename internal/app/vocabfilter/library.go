package vocabfilter

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/heartmarshall/vocabhelper/internal/domain"
)

// libraryEntry is one element of an exported library as read back.
// A nil field means the key was missing or null.
type libraryEntry struct {
	Word        *looseText `json:"word"`
	Term        *looseText `json:"term"`
	Phonetic    *looseText `json:"phonetic"`
	Translation *looseText `json:"translation"`
	Definition  *looseText `json:"definition"`
	Example     *looseText `json:"example"`
}

// looseText accepts any JSON scalar. Non-string values keep their literal
// text, so a numeric word 1984 reads as "1984".
type looseText string

func (t *looseText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = looseText(s)
		return nil
	}
	*t = looseText(data)
	return nil
}

// LoadLibrary reads a library written by Extract and maps it to trainer words.
func LoadLibrary(path string) ([]domain.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}

	var entries []libraryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode library %s: %w", path, err)
	}

	return toWords(entries), nil
}

// toWords maps library entries to words in input order.
//
//	term     = word, or term when word is absent; "word_<i>" when blank
//	id       = "<term>#<i>", "w#<i>" when the term is blank
//	meaning  = translation, falling back to definition
//	examples = example split into non-blank trimmed lines
func toWords(entries []libraryEntry) []domain.Word {
	words := make([]domain.Word, len(entries))
	for i, e := range entries {
		term := e.Word
		if term == nil {
			term = e.Term
		}
		text := trimText(deref(term))

		idPrefix, display := text, text
		if text == "" {
			idPrefix = "w"
			display = "word_" + strconv.Itoa(i)
		}

		meaning := trimText(deref(e.Translation))
		if meaning == "" {
			meaning = trimText(deref(e.Definition))
		}

		words[i] = domain.Word{
			ID:       idPrefix + "#" + strconv.Itoa(i),
			Term:     display,
			Phonetic: trimText(deref(e.Phonetic)),
			Meaning:  meaning,
			Examples: splitExamples(trimText(deref(e.Example))),
		}
	}
	return words
}

func splitExamples(example string) []string {
	if example == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(example, "\n") {
		if line = trimText(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// trimText trims like the front end does, which also drops a stray BOM.
func trimText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == '\ufeff' })
}

func deref(t *looseText) string {
	if t == nil {
		return ""
	}
	return string(*t)
}
