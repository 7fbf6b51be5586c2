package session

import (
	"github.com/samber/lo"
	"talkscript/internal/app/script"
)

// State is an immutable view of a Controller.
type State struct {
	FileName      string
	FileSize      int
	Transcription string
	Script        *script.Document
	Transcribing  bool
	Generating    bool
	Error         string
	Copied        bool
}

// HasFile reports whether a file is selected.
func (s State) HasFile() bool {
	return s.FileName != ""
}

// HasError reports whether the error banner is shown.
func (s State) HasError() bool {
	return s.Error != ""
}

func cloneDocument(doc *script.Document) *script.Document {
	if doc == nil {
		return nil
	}
	return &script.Document{
		Title:   doc.Title,
		Summary: doc.Summary,
		Sections: lo.Map(doc.Sections, func(s script.Section, _ int) script.Section {
			section := script.Section{
				Heading: s.Heading,
				Points:  append([]string(nil), s.Points...),
			}
			if s.Timestamp != nil {
				ts := *s.Timestamp
				section.Timestamp = &ts
			}
			return section
		}),
	}
}
