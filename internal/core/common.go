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
	"path/filepath"
	"time"

	"github.com/ballessay/hostfileconverter/internal/blocklist"
)

// Config holds the settings of one run. It is built once at startup (defaults,
// then config file, then flags) and never mutated afterwards.
type Config struct {
	WorkingDir string
	OutputFile string
	Format     blocklist.Format
	Denylist   []string
	PrintStats bool
	SortOutput bool
	BufferSize int
}

// OutputPath joins the working directory and the output file name. An
// absolute output file name is used as-is.
func (c Config) OutputPath() string {
	if filepath.IsAbs(c.OutputFile) {
		return c.OutputFile
	}
	return filepath.Join(c.WorkingDir, c.OutputFile)
}

// FileStats are the counters for one source file.
type FileStats struct {
	Path       string
	Lines      int64 // every line, comments and blanks included
	Relevant   int64 // neither blank nor comment
	WithDomain int64 // relevant lines that yielded a domain token
	Kept       int64 // domains that passed the denylist, duplicates included
	Denied     int64
	Elapsed    time.Duration
}

// RunStats summarize a finished run.
type RunStats struct {
	WorkingDir    string
	OutputPath    string
	Format        blocklist.Format
	Files         []FileStats
	TotalLines    int64
	UniqueDomains int
	Digest        string
	Records       int64
	BytesWritten  int64
	StartTime     time.Time
	Elapsed       time.Duration
}
