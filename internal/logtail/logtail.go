package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single log line; longer lines fail the read.
const maxLineBytes = 1024 * 1024

// Tail returns the last n lines of r. A non-positive n returns every line.
func Tail(r io.Reader, n int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		// Keep at most 2n lines buffered, trimming in one copy.
		if n > 0 && len(lines) >= 2*n {
			lines = append(lines[:0], lines[len(lines)-n:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// File returns the last n lines of the log at path. A missing file has no
// lines.
func File(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	return Tail(f, n)
}
