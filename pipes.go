// Package remarks merges and ranks wallet address labels read from
// tab-separated text, one ADDRESS<TAB>LABEL record per line.
//
// Labels that share an address are merged into a single line, ordered by the
// number each label ends with, and prefixed with one confidence marker (✅)
// per label. The merged lines are then ranked: lines with more markers come
// first, and lines with the same number of markers are ordered by their
// label text.
//
// Most operations return a Pipe, so that operations can be chained:
//
//	out, err := remarks.File("wallets.txt").Merge().Rank().String()
//
// If any pipe operation results in an error, the pipe's Error method will
// return that error, and all later pipe operations will be no-ops. For the
// common case, Aggregate runs the whole pipeline for a file and classifies
// any failure.
package remarks

import (
	"io"
	"os"
)

// Pipe represents a pipe object with an associated ReadAutoCloser.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
	stdout io.Writer
}

// NewPipe returns a pointer to a new empty pipe.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		stdout: os.Stdout,
	}
}

// Close closes the pipe's associated reader. This is always safe to do,
// because pipes created from a non-closable source are given a no-op closer.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil
// otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes from the pipe into b. At end of input, or on
// a nil pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to err. A non-nil error also closes
// the pipe's reader, since nothing will read from it again.
func (p *Pipe) SetError(err error) {
	if p == nil {
		return
	}
	if err != nil {
		p.Close()
	}
	p.err = err
}

// WithReader associates the pipe with r. The reader is closed automatically,
// if it is closable, once it has been completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout sets the writer used by Stdout instead of os.Stdout. This is
// mostly useful for testing.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithError sets the pipe's error status to err and returns the pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

// next returns a fresh pipe reading from r which keeps p's stdout.
func (p *Pipe) next(r io.Reader) *Pipe {
	q := NewPipe().WithReader(r)
	if p != nil && p.stdout != nil {
		q.stdout = p.stdout
	}
	return q
}
