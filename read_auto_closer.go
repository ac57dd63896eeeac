package remarks

import (
	"io"
)

// ReadAutoCloser wraps an io.ReadCloser and closes it as soon as it has been
// read to the end, so that a pipe which is drained never leaks its file.
type ReadAutoCloser struct {
	r io.ReadCloser
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping r. If r is not an
// io.Closer, closing it is a no-op.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return ReadAutoCloser{rc}
	}
	return ReadAutoCloser{io.NopCloser(r)}
}

// Read reads up to len(b) bytes into b. When the source reports io.EOF it is
// closed before Read returns.
func (a ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the underlying source. Closing an empty ReadAutoCloser does
// nothing.
func (a ReadAutoCloser) Close() error {
	if a.r == nil {
		return nil
	}
	return a.r.Close()
}
