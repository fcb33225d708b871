package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/vocabhelper/internal/app/vocabfilter"
	"github.com/heartmarshall/vocabhelper/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Every invalid field is reported in a single *domain.ValidationError.
func (c *Config) Validate() error {
	if err := c.Filter.validate(); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	return nil
}

func (f *FilterConfig) validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(f.InputPath) == "" {
		errs = append(errs, domain.FieldError{Field: "input_path", Message: "must not be empty"})
	}
	if strings.TrimSpace(f.OutputPath) == "" {
		errs = append(errs, domain.FieldError{Field: "output_path", Message: "must not be empty"})
	}

	if p, err := vocabfilter.PolicyByName(f.Mode); err != nil {
		errs = append(errs, domain.FieldError{
			Field:   "mode",
			Message: fmt.Sprintf("must be one of %s (got %q)", strings.Join(vocabfilter.PolicyNames(), ", "), f.Mode),
		})
	} else {
		f.Mode = p.Name
	}

	if f.Preview < 0 {
		errs = append(errs, domain.FieldError{Field: "preview", Message: fmt.Sprintf("must be >= 0 (got %d)", f.Preview)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	f.MinFields = ParseFieldList(f.MinFieldsRaw)

	return nil
}

// ParseFieldList parses a comma-separated list of column names
// (e.g. "word,translation"). Blank items are dropped. An empty string
// returns a nil slice.
func ParseFieldList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		fields = append(fields, p)
	}

	return fields
}
