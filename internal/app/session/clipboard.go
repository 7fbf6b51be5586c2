package session

import (
	"fmt"
	"io"
)

// WriterClipboard writes copy text to an io.Writer, one block per call.
type WriterClipboard struct {
	W io.Writer
}

// WriteText implements Clipboard.
func (w WriterClipboard) WriteText(text string) error {
	if _, err := fmt.Fprintln(w.W, text); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}
