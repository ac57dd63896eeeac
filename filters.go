package remarks

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"os/exec"
	"strings"

	"github.com/itchyny/gojq"
	"mvdan.cc/sh/v3/shell"
)

// EachLine calls process for each line of input, passing it the line and a
// *strings.Builder to write its output to. The return value is a pipe
// containing the contents of the builder.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	defer p.Close()
	scanner := newScanner(p.Reader)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
		if p.Error() != nil {
			return p
		}
	}
	if err := scanner.Err(); err != nil {
		return p.WithError(err)
	}
	return p.next(strings.NewReader(output.String()))
}

// Exec runs cmdLine with the pipe's contents as its standard input and
// returns a pipe containing its standard output. If the command line cannot
// be parsed, or the command fails, the pipe's error status is set.
func (p *Pipe) Exec(cmdLine string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	args, err := shell.Fields(cmdLine, nil)
	if err != nil {
		return p.WithError(err)
	}
	if len(args) == 0 {
		return p.WithError(errors.New("empty command line"))
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = p.Reader
	output, err := cmd.Output()
	p.Close()
	q := p.next(bytes.NewReader(output))
	if err != nil {
		q.SetError(err)
	}
	return q
}

// JQ reads JSON values from the pipe, runs the jq query against each of them
// and returns a pipe containing the results, one JSON value per line. If the
// query is invalid, or the input is not JSON, the pipe's error status is set.
func (p *Pipe) JQ(query string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return p.WithError(err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return p.WithError(err)
	}
	defer p.Close()
	var out bytes.Buffer
	dec := json.NewDecoder(p.Reader)
	for {
		var input any
		err := dec.Decode(&input)
		if err == io.EOF {
			break
		}
		if err != nil {
			return p.WithError(err)
		}
		iter := code.Run(input)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, ok := v.(error); ok {
				return p.WithError(err)
			}
			result, err := json.Marshal(v)
			if err != nil {
				return p.WithError(err)
			}
			out.Write(result)
			out.WriteByte('\n')
		}
	}
	return p.next(&out)
}

// Merge reads ADDRESS<TAB>LABEL records from the pipe and returns a pipe
// containing one merged line per address, in the order the addresses were
// first seen. Lines without a tab are dropped.
func (p *Pipe) Merge() *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	groups, err := p.Groups()
	if err != nil {
		return p
	}
	var out strings.Builder
	for _, e := range groups.Entries() {
		out.WriteString(e.String())
		out.WriteByte('\n')
	}
	return p.next(strings.NewReader(out.String()))
}

// Rank reads merged ADDRESS<TAB>FIELD lines from the pipe and returns a pipe
// containing them in ranked order: most markers first, then by field text.
func (p *Pipe) Rank() *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	lines, err := p.Lines()
	if err != nil {
		return p
	}
	rankLines(lines)
	var out strings.Builder
	for _, line := range lines {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return p.next(strings.NewReader(out.String()))
}

// newScanner returns a line scanner for r which accepts lines of any length.
func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), math.MaxInt)
	scanner.Split(scanLines)
	return scanner
}

// scanLines is a bufio.SplitFunc which ends a line at "\n", "\r\n" or a
// lone "\r". The line ending is not part of the token.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	}
	// A trailing "\r" may be the first half of "\r\n".
	return 0, nil, nil
}
