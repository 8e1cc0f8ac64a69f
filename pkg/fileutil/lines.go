package fileutil

import (
	"bufio"
	"fmt"
	"os"
)

// maxLineSize bounds a single line; statement lines are far shorter
const maxLineSize = 1024 * 1024

// LineReader provides a helper/utility to read text file(s) line by line
type LineReader struct {
	FilePath string
}

// NewLineReader returns a LineReader instance for a specified file
func NewLineReader(fp string) *LineReader {
	return &LineReader{
		FilePath: fp,
	}
}

// ReadLines reads the whole file and returns its lines without line terminators.
// Bytes are returned as they are; no character decoding takes place.
func (r *LineReader) ReadLines() ([]string, error) {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening a statement file: %w", err)
	}
	defer f.Close()

	var lines []string
	err = r.ReadAndProcessByLine(f, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// ReadAndProcessByLine reads f line by line and passes every line to processorFn
func (r *LineReader) ReadAndProcessByLine(f *os.File, processorFn func(string) error) error {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := processorFn(scanner.Text()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", r.FilePath, err)
	}

	return nil
}
