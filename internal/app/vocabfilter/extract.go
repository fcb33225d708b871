// Package vocabfilter extracts vocabulary libraries from the ECDICT CSV dataset.
// Rows are selected by markers in the tag column and written as a JSON array
// of domain.VocabRecord; LoadLibrary reads such a file back as trainer words.
package vocabfilter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/vocabhelper/internal/domain"
)

// Stats holds counters of a single extraction pass.
type Stats struct {
	TotalRows  int
	TagMatched int // rows carrying the include marker
	Excluded   int // tag matched, but an exclude marker was present
	Incomplete int // accepted by tag, dropped for empty word or translation
	Accepted   int
}

// ExtractBasic writes every IELTS word of the dataset at csvPath to outputPath.
// minFields is accepted for compatibility and does not affect filtering.
func ExtractBasic(log *slog.Logger, csvPath, outputPath string, minFields []string) ([]domain.VocabRecord, Stats, error) {
	return Extract(log, csvPath, outputPath, BasicPolicy(), minFields)
}

// ExtractAdvanced is ExtractBasic without words also tagged zk or gk.
func ExtractAdvanced(log *slog.Logger, csvPath, outputPath string, minFields []string) ([]domain.VocabRecord, Stats, error) {
	return Extract(log, csvPath, outputPath, AdvancedPolicy(), minFields)
}

// Extract runs a single pass over the dataset at csvPath, keeps rows accepted
// by policy and writes them to outputPath, replacing any existing file.
//
// A missing input is not an error: a warning is logged, the output is left
// untouched and an empty result is returned. Read, encoding and write
// failures are returned.
func Extract(log *slog.Logger, csvPath, outputPath string, policy Policy, minFields []string) ([]domain.VocabRecord, Stats, error) {
	if minFields == nil {
		minFields = domain.DefaultMinFields
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("policy", policy.Name))

	f, err := openInput(csvPath)
	if errors.Is(err, domain.ErrInputNotFound) {
		log.Warn("input file not found", slog.String("path", csvPath))
		return []domain.VocabRecord{}, Stats{}, nil
	}
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()

	log.Info("processing file", slog.String("path", csvPath))
	log.Info("filter conditions",
		slog.String("include", policy.Include),
		slog.String("exclude", strings.Join(policy.Exclude, ",")),
	)
	log.Debug("min fields", slog.String("fields", strings.Join(minFields, ",")))

	records, stats, err := filterRows(f, policy)
	if err != nil {
		return nil, stats, fmt.Errorf("filter %s: %w", csvPath, err)
	}

	if len(records) == 0 {
		log.Warn("no matching words found, check the format of the tag column",
			slog.Int("total_rows", stats.TotalRows),
		)
	}

	if err := writeRecords(outputPath, records); err != nil {
		return nil, stats, err
	}

	log.Info("extraction completed",
		slog.String("output", outputPath),
		slog.Int("total_rows", stats.TotalRows),
		slog.Int("tag_matched", stats.TagMatched),
		slog.Int("excluded", stats.Excluded),
		slog.Int("incomplete", stats.Incomplete),
		slog.Int("accepted", stats.Accepted),
	)

	return records, stats, nil
}

// openInput opens the dataset. A path that cannot be stat'ed at all
// (missing file, a regular file used as a directory, a dangling symlink)
// is reported as ErrInputNotFound. Other failures such as permissions are
// returned as is.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, fmt.Errorf("open %s: %w", path, errors.Join(domain.ErrInputNotFound, statErr))
	}
	return nil, fmt.Errorf("open input: %w", err)
}

// filterRows applies policy to every row of r and returns the accepted
// records in input order. The result is never nil.
func filterRows(r io.Reader, policy Policy) ([]domain.VocabRecord, Stats, error) {
	var stats Stats
	records := []domain.VocabRecord{}

	reader, err := newRowReader(r)
	if err != nil {
		return nil, stats, err
	}

	for {
		rw, err := reader.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, err
		}
		stats.TotalRows++

		switch policy.classify(domain.NormalizeTag(rw.get(domain.ColumnTag))) {
		case verdictNoMatch:
			continue
		case verdictExcluded:
			stats.TagMatched++
			stats.Excluded++
			continue
		}
		stats.TagMatched++

		rec := toRecord(rw)
		if !rec.IsComplete() {
			stats.Incomplete++
			continue
		}

		records = append(records, rec)
		stats.Accepted++
	}

	return records, stats, nil
}

func toRecord(rw row) domain.VocabRecord {
	return domain.VocabRecord{
		Word:        domain.TrimField(rw.get(domain.ColumnWord)),
		Phonetic:    domain.TrimField(rw.get(domain.ColumnPhonetic)),
		Translation: domain.TrimField(rw.get(domain.ColumnTranslation)),
		Definition:  domain.TrimField(rw.get(domain.ColumnDefinition)),
		Example:     domain.TrimField(rw.get(domain.ColumnExample)),
		Tag:         domain.TrimField(rw.get(domain.ColumnTag)),
	}
}
