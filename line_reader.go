package mapok

import (
	"bufio"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

var _ Iter[string] = &LineReader{}

// FromReadCloser returns an iterator producing lines from the given reader,
// with line breaks removed from each line.
func FromReadCloser(r io.ReadCloser) *LineReader {
	return &LineReader{
		reader:  r,
		scanner: bufio.NewScanner(r),
	}
}

// LineReader iterates the lines of a reader. A read error surfaces once as
// a failure element; the iterator is exhausted afterwards.
type LineReader struct {
	reader  io.ReadCloser
	scanner *bufio.Scanner
	done    bool
}

func (l *LineReader) Next() (string, error) {
	if l.done {
		return "", io.EOF
	}

	if l.scanner.Scan() {
		return l.scanner.Text(), nil
	}

	l.done = true
	if err := l.scanner.Err(); err != nil {
		return "", eris.Wrap(err, "scanner scan error")
	}
	return "", io.EOF
}

func (l *LineReader) Close() error {
	return l.reader.Close()
}

// AsReadCloser adapts a line iterator into a reader, optionally restoring a
// trailing newline after each line. A failure element aborts the read with
// that error; closing the reader closes the iterator.
func AsReadCloser(it Iter[string], appendNewline bool) io.ReadCloser {
	return &lineReadCloser{
		it:            it,
		buf:           strings.NewReader(""),
		appendNewline: appendNewline,
	}
}

type lineReadCloser struct {
	it            Iter[string]
	buf           *strings.Reader
	appendNewline bool
}

func (l *lineReadCloser) Read(p []byte) (int, error) {
	// an empty line contributes no bytes, keep pulling until data buffers
	for l.buf.Len() == 0 {
		line, err := l.it.Next()
		if err != nil {
			return 0, err
		}
		if l.appendNewline {
			line = line + "\n"
		}
		l.buf.Reset(line)
	}
	return l.buf.Read(p)
}

func (l *lineReadCloser) Close() error {
	return l.it.Close()
}
