package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/blimu-dev/tseo-gen/pkg/ir"
)

// Sink persists generated units
type Sink interface {
	Write(unit ir.GeneratedUnit) error
}

// FileSink writes units below Root. It never creates directories on its own:
// call Prepare for every output directory before the first Write.
type FileSink struct {
	Root string
}

// NewFileSink creates a sink rooted at root
func NewFileSink(root string) *FileSink {
	return &FileSink{Root: root}
}

// Prepare creates the given directories, relative to Root unless absolute
func (s *FileSink) Prepare(dirs ...string) error {
	for _, dir := range dirs {
		target := s.resolve(dir)
		if err := os.MkdirAll(target, 0o755); err != nil {
			return &WriteError{Path: target, Cause: err}
		}
	}
	return nil
}

// Write writes the unit content, replacing any existing file
func (s *FileSink) Write(unit ir.GeneratedUnit) error {
	target := s.resolve(unit.Path)
	if err := os.WriteFile(target, []byte(unit.Content), 0o644); err != nil {
		return &WriteError{Path: target, Cause: err}
	}
	return nil
}

func (s *FileSink) resolve(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Root, p)
}

// MemorySink keeps units in memory, in write order
type MemorySink struct {
	Units []ir.GeneratedUnit
}

// Write records the unit
func (s *MemorySink) Write(unit ir.GeneratedUnit) error {
	s.Units = append(s.Units, unit)
	return nil
}

// Get returns the content of the last unit written to path
func (s *MemorySink) Get(path string) (string, bool) {
	for i := len(s.Units) - 1; i >= 0; i-- {
		if s.Units[i].Path == path {
			return s.Units[i].Content, true
		}
	}
	return "", false
}

// Paths returns the unit paths in write order
func (s *MemorySink) Paths() []string {
	paths := make([]string, 0, len(s.Units))
	for _, u := range s.Units {
		paths = append(paths, u.Path)
	}
	return paths
}

// WriterSink prints every unit to W under a header line, for dry runs
type WriterSink struct {
	W io.Writer
}

// Write prints the unit
func (s WriterSink) Write(unit ir.GeneratedUnit) error {
	if _, err := fmt.Fprintf(s.W, "==> %s <==\n%s\n", unit.Path, unit.Content); err != nil {
		return &WriteError{Path: unit.Path, Cause: err}
	}
	return nil
}
