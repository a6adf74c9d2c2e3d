// Package input reads operator answers for the interactive workflows.
package input

import (
	"bufio"
	"io"
	"os"
)

// Reader is the source of prompt answers, one line per ReadString('\n')
type Reader interface {
	ReadString(delim byte) (string, error)
}

// StdinReader reads answers from the terminal
type StdinReader struct {
	reader *bufio.Reader
}

// NewStdinReader creates a StdinReader over os.Stdin
func NewStdinReader() *StdinReader {
	return NewStreamReader(os.Stdin)
}

// NewStreamReader creates a StdinReader over any stream, such as a piped answers file
func NewStreamReader(r io.Reader) *StdinReader {
	return &StdinReader{reader: bufio.NewReader(r)}
}

// ReadString reads until delimiter
func (r *StdinReader) ReadString(delim byte) (string, error) {
	return r.reader.ReadString(delim)
}

// StringReader replays scripted answers.
// Each answer should already end with the delimiter ReadString is called
// with, e.g. "example.test\n".
type StringReader struct {
	inputs []string
	index  int
}

// NewStringReader creates a reader from scripted answers
func NewStringReader(inputs ...string) *StringReader {
	return &StringReader{inputs: inputs}
}

// ReadString returns the next answer, or io.EOF when none are left.
// The delim parameter is ignored.
func (r *StringReader) ReadString(delim byte) (string, error) {
	if r.index >= len(r.inputs) {
		return "", io.EOF
	}
	result := r.inputs[r.index]
	r.index++
	return result, nil
}
