package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	keyCtrlC     = 3
	keyCtrlD     = 4
	keyBackspace = 127
	keyEsc       = 27
)

// history holds previously entered lines, most recent last, for the
// REPL's "history" command and its arrow-key recall.
type history struct {
	lines []string
}

func (h *history) add(line string) {
	if line == "" {
		return
	}
	if len(h.lines) > 0 && h.lines[len(h.lines)-1] == line {
		return
	}
	h.lines = append(h.lines, line)
}

// lineReader abstracts over raw-mode rune-at-a-time editing (with
// history recall) and a plain bufio.Scanner fallback for when stdin
// isn't a terminal we can put in raw mode (piped input, windows).
type lineReader struct {
	raw     bool
	restore func()
	in      *bufio.Reader
	scanner *bufio.Scanner
	hist    *history
	histPos int
}

func newLineReader(h *history) *lineReader {
	restore, err := setRawIO()
	if err != nil {
		return &lineReader{scanner: bufio.NewScanner(os.Stdin), hist: h}
	}
	return &lineReader{raw: true, restore: restore, in: bufio.NewReader(os.Stdin), hist: h}
}

func (lr *lineReader) Close() {
	if lr.raw && lr.restore != nil {
		lr.restore()
	}
}

// ReadLine prints prompt and reads one line of input. ok is false at
// end of input (Ctrl-D or EOF).
func (lr *lineReader) ReadLine(prompt string) (line string, ok bool) {
	if !lr.raw {
		fmt.Print(prompt)
		if !lr.scanner.Scan() {
			return "", false
		}
		return lr.scanner.Text(), true
	}
	return lr.readLineRaw(prompt)
}

// readLineRaw implements a minimal line editor over a raw terminal:
// printable runes insert, backspace deletes, up/down arrows recall
// history, enter submits, Ctrl-C aborts the line, Ctrl-D on an empty
// line ends input.
func (lr *lineReader) readLineRaw(prompt string) (string, bool) {
	fmt.Print(prompt)
	buf := []rune{}
	lr.histPos = len(lr.hist.lines)

	redraw := func() {
		fmt.Print("\r\x1b[K", prompt, string(buf))
	}

	for {
		r, _, err := lr.in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return "", false
			}
			return "", false
		}

		switch r {
		case '\r', '\n':
			fmt.Print("\r\n")
			return string(buf), true
		case keyCtrlC:
			buf = buf[:0]
			fmt.Print("\r\n")
			return "", true
		case keyCtrlD:
			if len(buf) == 0 {
				fmt.Print("\r\n")
				return "", false
			}
		case keyBackspace, '\b':
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				redraw()
			}
		case keyEsc:
			lr.handleEscape(&buf)
			redraw()
		default:
			if r >= 0x20 {
				buf = append(buf, r)
				redraw()
			}
		}
	}
}

// handleEscape consumes a "[A"/"[B" arrow-key escape sequence
// following an ESC byte already read, and replaces buf's contents
// with the recalled history entry (up, or down while newer entries
// remain). Down past the newest entry clears buf; the line being
// edited before recall began is not restored.
func (lr *lineReader) handleEscape(buf *[]rune) {
	b1, _, err := lr.in.ReadRune()
	if err != nil || b1 != '[' {
		return
	}
	b2, _, err := lr.in.ReadRune()
	if err != nil {
		return
	}

	switch b2 {
	case 'A': // up
		if lr.histPos > 0 {
			lr.histPos--
			*buf = []rune(lr.hist.lines[lr.histPos])
		}
	case 'B': // down
		if lr.histPos < len(lr.hist.lines)-1 {
			lr.histPos++
			*buf = []rune(lr.hist.lines[lr.histPos])
		} else {
			lr.histPos = len(lr.hist.lines)
			*buf = (*buf)[:0]
		}
	}
}
