package remarks

import (
	"os"
	"strings"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// Exec runs an external command and returns a pipe containing its output. The
// command line is split into words the way a POSIX shell would, so quoted
// arguments are kept together. If the command fails, the pipe's error status
// is set.
func Exec(cmdLine string) *Pipe {
	return NewPipe().Exec(cmdLine)
}

// File returns a pipe reading the named file. If the file cannot be opened,
// the pipe's error status is set.
func File(name string) *Pipe {
	p := NewPipe()
	f, err := os.Open(name)
	if err != nil {
		return p.WithError(err)
	}
	return p.WithReader(f)
}

// Stdin returns a pipe which reads from the program's standard input.
func Stdin() *Pipe {
	return NewPipe().WithReader(os.Stdin)
}
