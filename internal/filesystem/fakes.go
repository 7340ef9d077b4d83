package filesystem

import (
	"io"
	"strings"

	"github.com/IgorBayerl/wordcount/internal/filereader"
)

// StringFileSource serves the same in-memory body for every path. It keeps
// track of how many readers it handed out and how many were closed, so tests
// can check that a caller releases what it opens.
type StringFileSource struct {
	Body   string
	opens  int
	closes int
}

func NewStringFileSource(body string) *StringFileSource {
	return &StringFileSource{Body: body}
}

func (s *StringFileSource) OpenText(string) (*filereader.LineReader, error) {
	s.opens++
	return filereader.NewLineReader(&recordingCloser{
		Reader:  strings.NewReader(s.Body),
		onClose: func() { s.closes++ },
	}), nil
}

// Opens returns the number of readers handed out.
func (s *StringFileSource) Opens() int { return s.opens }

// Closes returns the number of times a handed-out reader released its stream.
func (s *StringFileSource) Closes() int { return s.closes }

// FailingFileSource refuses every path with the configured error.
type FailingFileSource struct {
	Err error
}

func NewFailingFileSource(err error) *FailingFileSource {
	return &FailingFileSource{Err: err}
}

func (s *FailingFileSource) OpenText(path string) (*filereader.LineReader, error) {
	return nil, &AccessError{Path: path, Err: s.Err}
}

type recordingCloser struct {
	io.Reader
	onClose func()
}

func (r *recordingCloser) Close() error {
	r.onClose()
	return nil
}
