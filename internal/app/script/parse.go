package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyResponse is returned when the model produced no content.
	ErrEmptyResponse = errors.New("empty response")
	// ErrMalformed is returned when the content is not valid JSON.
	ErrMalformed = errors.New("malformed JSON")
	// ErrInvalidShape is returned when valid JSON does not match Document.
	ErrInvalidShape = errors.New("invalid shape")
)

// Parse decodes generated content into a Document, checking every field
// against the declared shape. Unknown fields are ignored.
func Parse(content string) (*Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyResponse
	}

	var raw any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	root, ok := raw.(map[string]any)
	if !ok {
		return nil, shapeError("document must be an object")
	}

	title, err := requireString(root, "title", "title")
	if err != nil {
		return nil, err
	}
	summary, err := requireString(root, "summary", "summary")
	if err != nil {
		return nil, err
	}

	rawSections, ok := root["sections"].([]any)
	if !ok {
		return nil, shapeError("sections must be an array")
	}

	doc := &Document{
		Title:    title,
		Summary:  summary,
		Sections: make([]Section, 0, len(rawSections)),
	}
	for i, item := range rawSections {
		section, err := parseSection(item, fmt.Sprintf("sections[%d]", i))
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc, nil
}

func parseSection(item any, path string) (Section, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Section{}, shapeError(path + " must be an object")
	}

	heading, err := requireString(obj, "heading", path+".heading")
	if err != nil {
		return Section{}, err
	}

	rawPoints, ok := obj["points"].([]any)
	if !ok {
		return Section{}, shapeError(path + ".points must be an array")
	}
	points := make([]string, 0, len(rawPoints))
	for j, p := range rawPoints {
		point, ok := p.(string)
		if !ok {
			return Section{}, shapeError(fmt.Sprintf("%s.points[%d] must be a string", path, j))
		}
		points = append(points, point)
	}

	section := Section{Heading: heading, Points: points}

	switch ts := obj["timestamp"].(type) {
	case nil:
	case string:
		section.Timestamp = &ts
	default:
		return Section{}, shapeError(path + ".timestamp must be a string")
	}

	return section, nil
}

func requireString(obj map[string]any, key, path string) (string, error) {
	value, ok := obj[key].(string)
	if !ok {
		return "", shapeError(path + " must be a string")
	}
	return value, nil
}

func shapeError(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidShape, detail)
}
