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
	"fmt"
	"io"
)

// Reporter prints the optional statistics to the user. A disabled Reporter
// (or one with a nil writer) prints nothing.
type Reporter struct {
	w       io.Writer
	enabled bool
}

// NewReporter returns a Reporter writing to w when enabled is true.
func NewReporter(w io.Writer, enabled bool) *Reporter {
	return &Reporter{w: w, enabled: enabled && w != nil}
}

// File prints the line for one source file.
func (r *Reporter) File(fs FileStats) {
	if !r.enabled {
		return
	}
	fmt.Fprintf(r.w, "file: %s has %d lines, relevant: %d split: %d unfiltered lines %d\n",
		fs.Path, fs.Lines, fs.Relevant, fs.WithDomain, fs.Kept)
}

// Summary prints the closing line for the run.
func (r *Reporter) Summary(rs *RunStats) {
	if !r.enabled || rs == nil {
		return
	}
	fmt.Fprintf(r.w, "overall line count %d, unique unfiltered domains: %d (digest %s)\n",
		rs.TotalLines, rs.UniqueDomains, rs.Digest)
}
