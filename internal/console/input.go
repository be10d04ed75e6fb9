package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader supplies input one line at a time. ReadLine returns the line
// without its terminator, and io.EOF once input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// NewLineReader reads lines of any length from r. A final line without a
// terminator is still returned before io.EOF.
func NewLineReader(r io.Reader) LineReader {
	return &bufferedReader{r: bufio.NewReader(r)}
}

type bufferedReader struct {
	r *bufio.Reader
}

func (b *bufferedReader) ReadLine() (string, error) {
	line, err := b.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Lines is a LineReader over a fixed script, for driving the menu without a
// terminal.
type Lines []string

// ReadLine returns the next scripted line.
func (l *Lines) ReadLine() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, nil
}
