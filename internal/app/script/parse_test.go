package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidDocument(t *testing.T) {
	content := `{
		"title": "予算会議",
		"summary": "予算について話しました。",
		"sections": [
			{"heading": "導入", "points": ["挨拶", "議題の確認"], "timestamp": "00:00–03:00"},
			{"heading": "予算", "points": []}
		],
		"extra": 1
	}`

	doc, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "予算会議", doc.Title)
	assert.Equal(t, "予算について話しました。", doc.Summary)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "導入", doc.Sections[0].Heading)
	assert.Equal(t, []string{"挨拶", "議題の確認"}, doc.Sections[0].Points)
	require.NotNil(t, doc.Sections[0].Timestamp)
	assert.Equal(t, "00:00–03:00", *doc.Sections[0].Timestamp)
	assert.Nil(t, doc.Sections[1].Timestamp)
	assert.Empty(t, doc.Sections[1].Points)
}

func TestParse_EmptySectionsAllowed(t *testing.T) {
	doc, err := Parse(`{"title":"t","summary":"s","sections":[]}`)
	require.NoError(t, err)
	assert.NotNil(t, doc.Sections)
	assert.Empty(t, doc.Sections)
}

func TestParse_NullTimestampIsAbsent(t *testing.T) {
	doc, err := Parse(`{"title":"t","summary":"s","sections":[{"heading":"h","points":["p"],"timestamp":null}]}`)
	require.NoError(t, err)
	assert.Nil(t, doc.Sections[0].Timestamp)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
		contains string
	}{
		{name: "empty", content: "", expected: ErrEmptyResponse},
		{name: "whitespace", content: "  \n", expected: ErrEmptyResponse},
		{name: "truncated JSON", content: `{"title": "t", "summary": "s", "sec`, expected: ErrMalformed},
		{name: "not an object", content: `["a"]`, expected: ErrInvalidShape, contains: "document must be an object"},
		{name: "missing title", content: `{"summary":"s","sections":[]}`, expected: ErrInvalidShape, contains: "title"},
		{name: "numeric summary", content: `{"title":"t","summary":3,"sections":[]}`, expected: ErrInvalidShape, contains: "summary"},
		{name: "missing sections", content: `{"title":"t","summary":"s"}`, expected: ErrInvalidShape, contains: "sections must be an array"},
		{name: "section not object", content: `{"title":"t","summary":"s","sections":["x"]}`, expected: ErrInvalidShape, contains: "sections[0]"},
		{name: "missing heading", content: `{"title":"t","summary":"s","sections":[{"points":[]}]}`, expected: ErrInvalidShape, contains: "sections[0].heading"},
		{name: "points not array", content: `{"title":"t","summary":"s","sections":[{"heading":"h","points":"p"}]}`, expected: ErrInvalidShape, contains: "sections[0].points"},
		{name: "point not string", content: `{"title":"t","summary":"s","sections":[{"heading":"h","points":["a",2]}]}`, expected: ErrInvalidShape, contains: "sections[0].points[1]"},
		{name: "timestamp not string", content: `{"title":"t","summary":"s","sections":[{"heading":"h","points":[],"timestamp":90}]}`, expected: ErrInvalidShape, contains: "timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.content)
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}
