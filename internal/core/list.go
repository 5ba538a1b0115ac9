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
	"log/slog"
	"os"
	"path/filepath"
)

// ListSources returns the files in dir whose name matches SourcePattern, in
// lexical order. Subdirectories are not searched. Entries that match but are
// directories, and the file at exclude (the output path), are skipped with a
// warning.
//
// Names are matched with filepath.Match against the bare file name instead of
// globbing the joined path, so glob metacharacters in dir are harmless.
func ListSources(dir, exclude string, logger *slog.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ioError("sources.list", dir, err)
	}

	excludeAbs, _ := filepath.Abs(exclude)

	var sources []string
	for _, entry := range entries {
		ok, err := filepath.Match(SourcePattern, entry.Name())
		if err != nil {
			// Only possible for a malformed pattern, which SourcePattern is not.
			return nil, ioError("sources.match", dir, err)
		}
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			logger.Warn("sources.skip_directory", "path", path)
			continue
		}
		if abs, _ := filepath.Abs(path); exclude != "" && abs == excludeAbs {
			logger.Warn("sources.skip_output", "path", path, "reason", "output file matches source pattern")
			continue
		}
		sources = append(sources, path)
	}
	return sources, nil
}
