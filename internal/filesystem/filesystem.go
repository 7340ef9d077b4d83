package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/IgorBayerl/wordcount/internal/filereader"
)

// ErrIsDirectory is wrapped in the AccessError returned when the path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// AccessError reports that a path could not be opened for reading. Its
// message is the message of the underlying failure, unchanged.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot open %s", e.Path)
	}
	return e.Err.Error()
}

func (e *AccessError) Unwrap() error { return e.Err }

// FileSource opens a path for sequential line-based reading. Callers own the
// returned reader and must close it.
type FileSource interface {
	OpenText(path string) (*filereader.LineReader, error)
}

// OSFileSource implements FileSource on top of the host filesystem.
type OSFileSource struct{}

func (OSFileSource) OpenText(path string) (*filereader.LineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &AccessError{Path: path, Err: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, &AccessError{Path: path, Err: &fs.PathError{Op: "open", Path: path, Err: ErrIsDirectory}}
	}
	return filereader.NewLineReader(f), nil
}
