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

import (
	"fmt"
	"sort"

	"github.com/zeebo/xxh3"
)

// DomainSet accumulates unique domains for a run. No normalization happens:
// "Example.com" and "example.com" are two members.
// Not safe for concurrent use; the merge pipeline is single-threaded.
type DomainSet struct {
	domains map[string]struct{}
}

// NewDomainSet returns an empty set.
func NewDomainSet() *DomainSet {
	return &DomainSet{domains: make(map[string]struct{})}
}

// Add inserts domain and reports whether it was new.
func (s *DomainSet) Add(domain string) bool {
	if _, ok := s.domains[domain]; ok {
		return false
	}
	s.domains[domain] = struct{}{}
	return true
}

// Contains reports membership.
func (s *DomainSet) Contains(domain string) bool {
	_, ok := s.domains[domain]
	return ok
}

// Len returns the number of unique domains.
func (s *DomainSet) Len() int { return len(s.domains) }

// Domains returns the members in map iteration order, which Go randomizes.
func (s *DomainSet) Domains() []string {
	out := make([]string, 0, len(s.domains))
	for d := range s.domains {
		out = append(out, d)
	}
	return out
}

// SortedDomains returns the members in ascending byte order.
func (s *DomainSet) SortedDomains() []string {
	out := s.Domains()
	sort.Strings(out)
	return out
}

// Digest is a NON-CRYPTOGRAPHIC fingerprint of the set contents (xxh3).
// Per-domain hashes are summed, so the value does not depend on insertion or
// iteration order: two runs over the same inputs yield the same digest.
func (s *DomainSet) Digest() uint64 {
	var sum uint64
	for d := range s.domains {
		sum += xxh3.HashString(d)
	}
	return sum
}

// DigestString formats Digest as fixed-width hex.
func (s *DomainSet) DigestString() string {
	return fmt.Sprintf("%016x", s.Digest())
}
