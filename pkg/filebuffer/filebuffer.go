// Package filebuffer keeps parsed sources around, indexed by line, so that
// diagnostics can render excerpts and translate byte offsets to positions.
package filebuffer

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"
)

// Sources is a concurrency-safe lookup of file buffers by filename.
type Sources struct {
	fbs map[string]*FileBuffer
	mu  sync.Mutex
}

func NewSources() *Sources {
	return &Sources{
		fbs: make(map[string]*FileBuffer),
	}
}

func (s *Sources) Get(filename string) *FileBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fbs[filename]
}

func (s *Sources) Set(filename string, fb *FileBuffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fbs[filename] = fb
}

// FileBuffer is a source buffer that tracks newline offsets as it is
// written.
type FileBuffer struct {
	filename string
	buf      bytes.Buffer
	offset   int
	offsets  []int
	mu       sync.Mutex
}

func New(filename string) *FileBuffer {
	return &FileBuffer{filename: filename}
}

func (fb *FileBuffer) Filename() string {
	return fb.filename
}

// Len returns the number of lines.
func (fb *FileBuffer) Len() int {
	return len(fb.offsets) + 1
}

func (fb *FileBuffer) Bytes() []byte {
	return fb.buf.Bytes()
}

func (fb *FileBuffer) Write(p []byte) (n int, err error) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	n, err = fb.buf.Write(p)

	start := 0
	index := bytes.IndexByte(p[:n], byte('\n'))
	for index >= 0 {
		fb.offsets = append(fb.offsets, fb.offset+start+index)
		start += index + 1
		index = bytes.IndexByte(p[start:n], byte('\n'))
	}
	fb.offset += n

	return n, err
}

func (fb *FileBuffer) WriteString(s string) (int, error) {
	return fb.Write([]byte(s))
}

// PositionAt translates a byte offset into a position.
func (fb *FileBuffer) PositionAt(offset int) lexer.Position {
	line := sort.Search(len(fb.offsets), func(i int) bool {
		return fb.offsets[i] >= offset
	})
	lineStart := 0
	if line > 0 {
		lineStart = fb.offsets[line-1] + 1
	}
	return lexer.Position{
		Filename: fb.filename,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - lineStart + 1,
	}
}

// Line returns the content of the given zero-based line, without its
// newline.
func (fb *FileBuffer) Line(ln int) ([]byte, error) {
	if ln >= fb.Len() {
		return nil, fmt.Errorf("line %d outside of buffer", ln)
	}

	start := 0
	if ln > 0 {
		start = fb.offsets[ln-1] + 1
	}
	end := fb.buf.Len()
	if ln < len(fb.offsets) {
		end = fb.offsets[ln]
	}

	return fb.buf.Bytes()[start:end], nil
}
