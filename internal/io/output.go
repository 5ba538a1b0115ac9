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
	"os"
	"path/filepath"
)

const (
	// DefaultBufferSize is the default buffer size for disk I/O
	DefaultBufferSize = 256 * 1024 // 256KB

	// LineTerminator ends every record written to the output file.
	LineTerminator = '\n'
)

var (
	// ErrOutputClosed is returned when attempting to write to a closed output file
	ErrOutputClosed = errors.New("output file closed")
)

// OutputMetrics holds counters for an output file
type OutputMetrics struct {
	BytesWritten int64
	WriteCount   int64
	FlushCount   int64
}

// OutputFile is a buffered, truncating writer for the merged blocklist.
// The file is created (or truncated) on open and only fully written after
// Close. A failure midway leaves whatever was flushed so far on disk.
type OutputFile struct {
	file       *os.File
	bufWriter  *bufio.Writer
	path       string
	identifier string // For logging/metrics
	closed     bool
	metrics    OutputMetrics
}

// OutputOptions configures an OutputFile
type OutputOptions struct {
	BufferSize int
	Identifier string
}

// DefaultOutputOptions returns the default options for OutputFile
func DefaultOutputOptions() *OutputOptions {
	return &OutputOptions{
		BufferSize: DefaultBufferSize,
		Identifier: "",
	}
}

// CreateOutputFile opens path for writing, truncating any previous content.
func CreateOutputFile(path string, options *OutputOptions) (*OutputFile, error) {
	if options == nil {
		options = DefaultOutputOptions()
	}
	if options.BufferSize <= 0 {
		options.BufferSize = DefaultBufferSize
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	identifier := options.Identifier
	if identifier == "" {
		identifier = filepath.Base(path)
	}

	return &OutputFile{
		file:       file,
		bufWriter:  bufio.NewWriterSize(file, options.BufferSize),
		path:       path,
		identifier: identifier,
	}, nil
}

// Write implements io.Writer on top of the buffer.
func (o *OutputFile) Write(data []byte) (int, error) {
	if o.closed {
		return 0, ErrOutputClosed
	}

	n, err := o.bufWriter.Write(data)
	o.metrics.BytesWritten += int64(n)
	if err != nil {
		return n, fmt.Errorf("failed to write to %s: %w", o.identifier, err)
	}
	o.metrics.WriteCount++
	return n, nil
}

// WriteLine writes record followed by the line terminator.
func (o *OutputFile) WriteLine(record []byte) error {
	if _, err := o.Write(record); err != nil {
		return err
	}
	if o.closed {
		return ErrOutputClosed
	}
	if err := o.bufWriter.WriteByte(LineTerminator); err != nil {
		return fmt.Errorf("failed to write to %s: %w", o.identifier, err)
	}
	o.metrics.BytesWritten++
	return nil
}

// Flush pushes buffered bytes to the file.
func (o *OutputFile) Flush() error {
	if o.closed {
		return ErrOutputClosed
	}
	if err := o.bufWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", o.identifier, err)
	}
	o.metrics.FlushCount++
	return nil
}

// Close flushes and closes the file. Calling Close twice is a no-op.
// The file handle is released even when the final flush fails.
func (o *OutputFile) Close() error {
	if o.closed {
		return nil
	}

	flushErr := o.Flush()
	o.closed = true

	if err := o.file.Close(); err != nil && flushErr == nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return flushErr
}

// Path returns the path the file was created at.
func (o *OutputFile) Path() string { return o.path }

// GetMetrics returns the current metrics for the output file
func (o *OutputFile) GetMetrics() OutputMetrics {
	return o.metrics
}
