/*
Package blocklist holds the per-line logic for hosts-style blocklists:
deciding which lines carry data, pulling the domain out of them, dropping
known-overbroad entries and rendering the survivors for a DNS blocker.
Everything here is pure and allocation-light; file handling lives in
internal/io and orchestration in internal/core.
*/
package blocklist

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

import "strings"

// CommentMarker starts a comment line in every supported input list.
const CommentMarker = "#"

// Relevant reports whether a raw input line (terminator included or not)
// should be parsed at all. Blank lines, whitespace-only lines and lines whose
// first byte is the comment marker are skipped.
//
// Only the very first byte is checked for the marker: "  # note" is a data
// line whose first token happens to be "#".
func Relevant(line string) bool {
	if strings.HasPrefix(line, CommentMarker) {
		return false
	}
	return strings.TrimSpace(line) != ""
}

// ExtractDomain picks the domain token out of a whitespace-split data line.
// "IP domain" lines yield the second token, domain-only lines the first.
// Extra tokens (aliases, trailing comments) are ignored. The token is returned
// as-is; no syntax or case checks are made.
func ExtractDomain(fields []string) (string, bool) {
	switch {
	case len(fields) > 1:
		return fields[1], true
	case len(fields) == 1:
		return fields[0], true
	}
	return "", false
}

// DomainFromLine splits line on runs of whitespace and hands the tokens to
// ExtractDomain.
func DomainFromLine(line string) (string, bool) {
	return ExtractDomain(strings.Fields(line))
}
