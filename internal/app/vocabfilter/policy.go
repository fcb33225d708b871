package vocabfilter

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/vocabhelper/internal/domain"
)

const (
	// ieltsMarker tags a word as part of the IELTS vocabulary list.
	ieltsMarker = "ielts"

	// zkMarker and gkMarker tag the middle-school (zhongkao) and
	// high-school (gaokao) lists.
	zkMarker = "zk"
	gkMarker = "gk"
)

// Policy decides which rows of the dataset enter a vocabulary library.
// Markers are matched as lowercase substrings of the tag field, since a tag
// field joins several markers with spaces or commas.
type Policy struct {
	Name    string
	Include string
	Exclude []string
}

// BasicPolicy keeps every word tagged as IELTS vocabulary.
func BasicPolicy() Policy {
	return Policy{Name: "basic", Include: ieltsMarker}
}

// AdvancedPolicy keeps IELTS words that are not also on a school-level list.
func AdvancedPolicy() Policy {
	return Policy{Name: "advanced", Include: ieltsMarker, Exclude: []string{zkMarker, gkMarker}}
}

// policies lists every known policy in the order they are presented.
var policies = []func() Policy{BasicPolicy, AdvancedPolicy}

// PolicyNames returns the names accepted by PolicyByName.
func PolicyNames() []string {
	names := make([]string, len(policies))
	for i, newPolicy := range policies {
		names[i] = newPolicy().Name
	}
	return names
}

// PolicyByName resolves a policy by its name (case-insensitive).
func PolicyByName(name string) (Policy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, newPolicy := range policies {
		if p := newPolicy(); p.Name == key {
			return p, nil
		}
	}
	return Policy{}, domain.NewValidationError("mode",
		fmt.Sprintf("unknown filter policy %q, want one of %s", name, strings.Join(PolicyNames(), ", ")))
}

type verdict int

const (
	verdictNoMatch verdict = iota
	verdictExcluded
	verdictAccepted
)

// classify evaluates an already lowercased tag.
func (p Policy) classify(tagLower string) verdict {
	if tagLower == "" || !strings.Contains(tagLower, p.Include) {
		return verdictNoMatch
	}
	for _, marker := range p.Exclude {
		if strings.Contains(tagLower, marker) {
			return verdictExcluded
		}
	}
	return verdictAccepted
}

// Accepts reports whether a row with the given lowercased tag passes the policy.
func (p Policy) Accepts(tagLower string) bool {
	return p.classify(tagLower) == verdictAccepted
}
