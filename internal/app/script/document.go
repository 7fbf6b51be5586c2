// Package script holds the talk script document model: parsing generated
// JSON into a validated Document and rendering it as plain text.
package script

// Document is a structured talk script derived from a transcription.
type Document struct {
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}

// Section is one ordered part of a Document.
type Section struct {
	Heading   string   `json:"heading"`
	Points    []string `json:"points"`
	Timestamp *string  `json:"timestamp,omitempty"`
}

// HasTimestamp reports whether the section carries a non-empty timestamp.
func (s Section) HasTimestamp() bool {
	return s.Timestamp != nil && *s.Timestamp != ""
}
