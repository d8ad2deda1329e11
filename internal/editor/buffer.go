package editor

import (
	"bufio"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Buffer is the in-memory View implementation used by the CLI host and the
// tests.
type Buffer struct {
	id        string
	path      string
	dirty     bool
	readOnly  bool
	scratch   bool
	firstLine string
	viewport  Viewport
}

// NewBuffer creates a buffer backed by the given file path. An empty path
// creates an unsaved buffer.
func NewBuffer(path string) *Buffer {
	return &Buffer{
		id:   uuid.NewString(),
		path: path,
	}
}

// NewScratchBuffer creates an unsaved scratch buffer with the given content
// as its first line.
func NewScratchBuffer(firstLine string) *Buffer {
	b := NewBuffer("")
	b.scratch = true
	b.firstLine = firstLine
	return b
}

// Open creates a buffer for an existing file, reading its first line for
// display purposes. Write-protected files become read-only buffers.
func Open(path string) (*Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	b := NewBuffer(path)

	scanner := bufio.NewScanner(file)
	if scanner.Scan() {
		b.firstLine = strings.TrimRight(scanner.Text(), "\r")
	}

	if info, err := file.Stat(); err == nil {
		b.readOnly = info.Mode().Perm()&0200 == 0
	}

	return b, nil
}

func (b *Buffer) ID() string            { return b.id }
func (b *Buffer) FilePath() string      { return b.path }
func (b *Buffer) IsDirty() bool         { return b.dirty }
func (b *Buffer) IsReadOnly() bool      { return b.readOnly }
func (b *Buffer) IsScratch() bool       { return b.scratch }
func (b *Buffer) FirstLineText() string { return b.firstLine }
func (b *Buffer) Viewport() Viewport    { return b.viewport }

// SetDirty marks the buffer as having unsaved changes.
func (b *Buffer) SetDirty(dirty bool) { b.dirty = dirty }

// SetReadOnly marks the buffer as not editable.
func (b *Buffer) SetReadOnly(readOnly bool) { b.readOnly = readOnly }

// SetFirstLine replaces the display line used for unsaved buffers.
func (b *Buffer) SetFirstLine(line string) { b.firstLine = line }

// SetViewport replaces the scroll/selection state.
func (b *Buffer) SetViewport(vp Viewport) { b.viewport = vp }
