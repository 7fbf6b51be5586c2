package script

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// FormatText renders the document as the flat text block used by the copy
// action. Sections keep their original order and points are bulleted with "-".
func FormatText(doc *Document, summaryLabel string) string {
	if doc == nil {
		return ""
	}
	if summaryLabel == "" {
		summaryLabel = DefaultSummaryLabel
	}

	blocks := []string{
		"# " + doc.Title,
		fmt.Sprintf("## %s\n%s", summaryLabel, doc.Summary),
	}
	blocks = append(blocks, lo.Map(doc.Sections, func(s Section, _ int) string {
		return formatSection(s)
	})...)

	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

func formatSection(s Section) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(s.Heading)
	if s.HasTimestamp() {
		fmt.Fprintf(&b, " (%s)", *s.Timestamp)
	}
	for _, point := range s.Points {
		b.WriteString("\n- ")
		b.WriteString(point)
	}
	return b.String()
}
