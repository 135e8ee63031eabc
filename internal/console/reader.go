package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// lineReader yields input lines without their line terminator. Lines may be
// any length; the final line need not end in a newline.
type lineReader struct {
	br  *bufio.Reader
	e   error
	eof bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// next returns the next line, or false once the input is exhausted.
func (lr *lineReader) next() (string, bool) {
	if lr.eof || lr.e != nil {
		return "", false
	}

	line, err := lr.br.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		lr.eof = true
		if line == "" {
			return "", false
		}
	case err != nil:
		lr.e = err
		return "", false
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

func (lr *lineReader) err() error { return lr.e }
