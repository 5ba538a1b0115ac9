package io

/*
hostfileconverter — merges hosts-style blocklists into DNS blocker configs
Copyright (C) 2025  Pepijn van der Stap <rxtls@vanderstap.info>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// LineReader reads a text file one line at a time. Lines are returned with
// their terminator, and there is no length limit (unlike bufio.Scanner,
// which rejects lines over its token size).
type LineReader struct {
	file  *os.File
	r     *bufio.Reader
	path  string
	lines int64
}

// OpenLineReader opens path and hints the kernel that it will be read
// sequentially. A failing hint is not an error.
func OpenLineReader(path string, bufferSize int) (*LineReader, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	_ = adviseSequential(file)

	return &LineReader{
		file: file,
		r:    bufio.NewReaderSize(file, bufferSize),
		path: path,
	}, nil
}

// Next returns the next line. At end of input it returns io.EOF; a final
// line without terminator is returned first with a nil error.
func (lr *LineReader) Next() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", io.EOF
			}
			lr.lines++
			return line, nil
		}
		return "", fmt.Errorf("failed to read %s: %w", lr.path, err)
	}
	lr.lines++
	return line, nil
}

// Lines returns how many lines Next has produced so far.
func (lr *LineReader) Lines() int64 { return lr.lines }

// Close releases the file handle.
func (lr *LineReader) Close() error {
	return lr.file.Close()
}

// ReadLines calls fn for every line of path and returns the line count.
// The file is closed before ReadLines returns, on success and on error.
func ReadLines(path string, bufferSize int, fn func(line string)) (int64, error) {
	lr, err := OpenLineReader(path, bufferSize)
	if err != nil {
		return 0, err
	}
	defer lr.Close()

	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return lr.Lines(), nil
		}
		if err != nil {
			return lr.Lines(), err
		}
		fn(line)
	}
}
