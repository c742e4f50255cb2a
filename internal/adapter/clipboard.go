package adapter

import "github.com/atotto/clipboard"

// Clipboard receives the designated "last processed" payload after a run.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard implements Clipboard using the OS clipboard.
type SystemClipboard struct{}

// NewSystemClipboard constructs a SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Copy places text on the system clipboard.
func (c *SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}
