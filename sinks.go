package remarks

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a line of input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// String returns the contents of the pipe as a string, or an error, and
// closes the pipe after reading. If there is an error reading, the pipe's
// error status is also set.
func (p *Pipe) String() (string, error) {
	if p == nil {
		return "", nil
	}
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Lines returns the lines of the pipe without their line endings.
func (p *Pipe) Lines() ([]string, error) {
	var lines []string
	_, err := p.EachLine(func(line string, _ *strings.Builder) {
		lines = append(lines, line)
	}).String()
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// CountLines returns the number of lines in the pipe.
func (p *Pipe) CountLines() (int, error) {
	lines, err := p.Lines()
	return len(lines), err
}

// Groups reads ADDRESS<TAB>LABEL records from the pipe and groups the labels
// by address. Lines without a tab are counted as skipped. A line which is not
// valid UTF-8 stops the read with an error wrapping ErrInvalidUTF8.
func (p *Pipe) Groups() (*Groups, error) {
	groups := NewGroups()
	if p == nil {
		return groups, nil
	}
	if p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	scanner := newScanner(p.Reader)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			err := fmt.Errorf("line %d: %w", groups.Lines+1, ErrInvalidUTF8)
			p.SetError(err)
			return nil, err
		}
		groups.AddLine(line)
	}
	if err := scanner.Err(); err != nil {
		p.SetError(err)
		return nil, err
	}
	return groups, nil
}

// Stdout writes the contents of the pipe to its standard output, os.Stdout
// unless changed with WithStdout. It returns the number of bytes written, or
// the pipe's error status if it has one.
func (p *Pipe) Stdout() (int, error) {
	if p.Error() != nil {
		return 0, p.Error()
	}
	output, err := p.String()
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, nil
	}
	w := p.stdout
	if w == nil {
		w = os.Stdout
	}
	return io.WriteString(w, output)
}

// WriteFile writes the contents of the pipe to the named file, truncating
// it first if it exists. It returns the number of bytes written.
func (p *Pipe) WriteFile(name string) (int64, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	out, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	defer out.Close()
	wrote, err := io.Copy(out, p.Reader)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	return wrote, nil
}
