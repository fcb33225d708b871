package domain

// Word is a vocabulary entry as presented by the trainer front end.
// Optional fields are omitted from JSON when empty.
type Word struct {
	ID       string   `json:"id"`
	Term     string   `json:"term"`
	Phonetic string   `json:"phonetic,omitempty"`
	Audio    string   `json:"audio,omitempty"`
	Meaning  string   `json:"meaning"`
	Examples []string `json:"examples,omitempty"`
}
