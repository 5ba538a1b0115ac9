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

// defaultDenylist contains entries some upstream lists block although they
// front shared infrastructure (dynamic DNS, blog hosting, object storage).
// Blocking them breaks far more than ads.
var defaultDenylist = []string{
	"no-ip.com",
	"www.no-ip.com",
	"blogspot.com",
	"s3.amazonaws.com",
	"jdownloader.org",
	"www.jdownloader.org",
}

// DefaultDenylist returns a fresh copy of the built-in denylist.
func DefaultDenylist() []string {
	out := make([]string, len(defaultDenylist))
	copy(out, defaultDenylist)
	return out
}

// Denylist is an immutable set of domains that must never reach the output.
// Matching is exact and case-sensitive. A nil *Denylist allows everything.
type Denylist struct {
	entries map[string]struct{}
}

// NewDenylist builds a Denylist from domains. Duplicates are harmless.
func NewDenylist(domains []string) *Denylist {
	entries := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		entries[d] = struct{}{}
	}
	return &Denylist{entries: entries}
}

// Allowed returns false when domain is on the denylist.
func (d *Denylist) Allowed(domain string) bool {
	if d == nil {
		return true
	}
	_, denied := d.entries[domain]
	return !denied
}

// Len returns the number of distinct entries.
func (d *Denylist) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}
