// Package distributor delivers the rendered digest to its output sink.
package distributor

import (
	"fmt"
	"io"
	"os"
)

// Distributor accepts a finished digest document.
type Distributor interface {
	Distribute(document string) error
}

// Terminal writes the digest to a writer, stdout by default.
type Terminal struct {
	out io.Writer
}

func NewTerminal() *Terminal {
	return &Terminal{out: os.Stdout}
}

func NewTerminalWriter(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Distribute(document string) error {
	if _, err := fmt.Fprint(t.out, document); err != nil {
		return fmt.Errorf("failed to write digest: %w", err)
	}
	return nil
}

// File writes the digest to a file path, replacing any previous content.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Distribute(document string) error {
	if err := os.WriteFile(f.path, []byte(document), 0o644); err != nil {
		return fmt.Errorf("failed to write digest to %s: %w", f.path, err)
	}
	return nil
}
