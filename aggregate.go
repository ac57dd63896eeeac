package remarks

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies why an input file could not be aggregated.
type Kind int

const (
	// NotFound means the input path does not exist.
	NotFound Kind = iota + 1
	// IOFailure covers every other failure to open or read the input.
	IOFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case IOFailure:
		return "i/o failure"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// FileError reports a failure to read an input file.
type FileError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Kind == NotFound {
		return fmt.Sprintf("error: file '%s' not found", e.Path)
	}
	return fmt.Sprintf("error reading file '%s': %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// fileError wraps err, which came from reading path, in a *FileError.
func fileError(path string, err error) error {
	kind := IOFailure
	if errors.Is(err, fs.ErrNotExist) {
		kind = NotFound
	}
	return &FileError{Kind: kind, Path: path, Err: err}
}

// Open reads and groups the records in the file at path. Any failure is
// returned as a *FileError.
func Open(path string) (*Groups, error) {
	return ReadGroups(File(path), path)
}

// ReadGroups reads and groups the records in p, which holds the input called
// name. Any failure is returned as a *FileError for name.
func ReadGroups(p *Pipe, name string) (*Groups, error) {
	groups, err := p.Groups()
	if err != nil {
		return nil, fileError(name, err)
	}
	return groups, nil
}

// Aggregate merges and ranks the records in the file at path and returns the
// rendered lines joined by newlines, with no trailing newline. Any failure is
// returned as a *FileError, and no partial output is returned with it.
func Aggregate(path string) (string, error) {
	groups, err := Open(path)
	if err != nil {
		return "", err
	}
	return groups.Report().String(), nil
}

// Process is like Aggregate, but reports a failure by returning the error
// message in place of the output.
func Process(path string) string {
	out, err := Aggregate(path)
	if err != nil {
		return err.Error()
	}
	return out
}
