//go:build windows

package main

import "errors"

// setRawIO is not implemented on windows; the REPL falls back to
// line-buffered input via bufio.Scanner, without history recall.
func setRawIO() (func(), error) {
	return nil, errors.New("raw terminal IO is not supported on windows")
}
