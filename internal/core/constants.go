/*
Package core constants shared by the merger, the writer and the command line.
They describe the fixed conventions of the input lists and the defaults of a
run; anything a user can change goes through Config instead.
*/
package core

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
	"time"

	fio "github.com/ballessay/hostfileconverter/internal/io"
)

// Application-wide constants.
const (
	// SourcePattern selects the input lists inside the working directory.
	// Matching is non-recursive.
	SourcePattern = "*.hosts"

	// DefaultOutputFile is written into the working directory unless overridden.
	DefaultOutputFile = "hosts.out"

	// DefaultDiskBufferSize is the size of the bufio buffers used for reading
	// source lists and writing the output. Public lists run to a few MB, so
	// one buffer covers a large share of a file per syscall.
	DefaultDiskBufferSize = fio.DefaultBufferSize

	// DeniedLogInterval throttles debug logging of denylisted domains. Some
	// lists repeat the same entry thousands of times.
	DeniedLogInterval = time.Second

	// DeniedLogBurst is how many denied domains are always logged before
	// throttling kicks in.
	DeniedLogBurst = 10
)
