// Package input abstracts interactive terminal input so confirmation
// prompts can be driven by canned answers in tests.
package input

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Reader is an interface for reading line-oriented user input
type Reader interface {
	ReadString(delim byte) (string, error)
}

// KeyReader reads a single keystroke without waiting for a newline
type KeyReader interface {
	ReadKey() (rune, error)
}

// StdinReader wraps bufio.Reader for os.Stdin
type StdinReader struct {
	reader *bufio.Reader
}

// NewStdinReader creates a new StdinReader
func NewStdinReader() *StdinReader {
	return &StdinReader{
		reader: bufio.NewReader(os.Stdin),
	}
}

// ReadString reads until delimiter
func (r *StdinReader) ReadString(delim byte) (string, error) {
	return r.reader.ReadString(delim)
}

// TerminalKeyReader reads single keystrokes from the controlling
// terminal by putting it into raw mode for the duration of one read.
type TerminalKeyReader struct{}

// NewTerminalKeyReader creates a new TerminalKeyReader
func NewTerminalKeyReader() *TerminalKeyReader {
	return &TerminalKeyReader{}
}

// ReadKey reads one keystroke. If stdin is not a terminal it falls
// back to reading the first byte of a line, so piped input still works.
func (k *TerminalKeyReader) ReadKey() (rune, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		buf := bufio.NewReader(os.Stdin)
		line, err := buf.ReadString('\n')
		if err != nil && line == "" {
			return 0, err
		}
		if line == "" {
			return '\n', nil
		}
		return rune(line[0]), nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer func() { _ = term.Restore(fd, state) }()

	var b [1]byte
	if _, err := os.Stdin.Read(b[:]); err != nil {
		return 0, err
	}
	return rune(b[0]), nil
}

// StringReader is a simple line reader for testing.
// Each input string should already include the delimiter that will be
// used in ReadString calls (e.g., "yes\n" for newline delimiter).
type StringReader struct {
	inputs []string
	index  int
}

// NewStringReader creates a reader from strings.
// Each input string should include the expected delimiter.
func NewStringReader(inputs ...string) *StringReader {
	return &StringReader{inputs: inputs}
}

// ReadString returns the next pre-configured string.
// Returns io.EOF when all inputs have been consumed.
// Note: The delim parameter is ignored; inputs should already include delimiters.
func (r *StringReader) ReadString(delim byte) (string, error) {
	if r.index >= len(r.inputs) {
		return "", io.EOF
	}
	result := r.inputs[r.index]
	r.index++
	return result, nil
}

// StringKeyReader is a canned single-key reader for testing.
type StringKeyReader struct {
	keys  []rune
	index int
}

// NewStringKeyReader creates a key reader that returns keys in order.
func NewStringKeyReader(keys ...rune) *StringKeyReader {
	return &StringKeyReader{keys: keys}
}

// ReadKey returns the next pre-configured keystroke.
// Returns io.EOF when all keys have been consumed.
func (r *StringKeyReader) ReadKey() (rune, error) {
	if r.index >= len(r.keys) {
		return 0, io.EOF
	}
	key := r.keys[r.index]
	r.index++
	return key, nil
}
