package filereader

import (
	"bufio"
	"bytes"
	"io"
	"iter"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single line. Anything longer fails the read.
const maxLineSize = 16 * 1024 * 1024

// ReadError reports a failure that happened after the source was opened.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// LineReader hands out the lines of an underlying stream one at a time.
// It is single pass: once a line has been yielded it cannot be read again.
type LineReader struct {
	closer  io.Closer
	scanner *bufio.Scanner
	err     error
	closed  bool
}

// NewLineReader wraps rc. A leading byte order mark selects UTF-8 or UTF-16
// decoding and is dropped; input without one is read as UTF-8.
func NewLineReader(rc io.ReadCloser) *LineReader {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(rc, decoder))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(ScanLines)
	return &LineReader{closer: rc, scanner: scanner}
}

// Lines returns the remaining lines without their line breaks. Iteration
// stops at end of input or at the first read error, which is then
// available from Err.
func (r *LineReader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if r.closed || r.err != nil {
			return
		}
		for r.scanner.Scan() {
			if !yield(r.scanner.Text()) {
				return
			}
		}
		if err := r.scanner.Err(); err != nil {
			r.err = &ReadError{Err: err}
		}
	}
}

// Err returns the read error that ended iteration, if any.
func (r *LineReader) Err() error {
	return r.err
}

// Close releases the underlying stream. Calling it again is a no-op.
func (r *LineReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.closer.Close()
}

// ScanLines is a bufio.SplitFunc that accepts "\n", "\r\n" and a lone "\r"
// as line breaks. A final line without a break is still returned, but
// input ending with a break does not produce an extra empty line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	i := bytes.IndexAny(data, "\r\n")
	if i < 0 {
		if atEOF && len(data) > 0 {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
	if data[i] == '\n' {
		return i + 1, data[:i], nil
	}
	if i+1 == len(data) && !atEOF {
		// A trailing '\r' may be the first half of "\r\n".
		return 0, nil, nil
	}
	if i+1 < len(data) && data[i+1] == '\n' {
		return i + 2, data[:i], nil
	}
	return i + 1, data[:i], nil
}
