package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader asks for and returns one line of user input.
// It returns io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Prompter is a LineReader over a text stream. Prompts are written to out
// and answers are read one line at a time from in, trimmed of surrounding
// whitespace.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine writes "<prompt>: " and reads the next line.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// Last line without a trailing newline
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
