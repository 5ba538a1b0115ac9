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
	"errors"
	"fmt"
	"strings"
)

// SinkholeAddress is the address every blocked domain resolves to.
const SinkholeAddress = "127.0.0.1"

// Format selects the output dialect. The zero value is the default (dnsmasq).
type Format int

const (
	FormatDnsmasq Format = iota
	FormatHosts
	FormatUnbound
)

// DefaultFormat is used when neither flag nor config picks one.
const DefaultFormat = FormatDnsmasq

// ErrUnknownFormat is wrapped by ParseFormat for names outside the enumeration.
var ErrUnknownFormat = errors.New("unknown output format")

// formatNames is indexed by Format; keep it in sync with the constants above.
var formatNames = [...]string{
	FormatDnsmasq: "dnsmasq",
	FormatHosts:   "hosts",
	FormatUnbound: "unbound",
}

// FormatNames lists the accepted names in declaration order.
func FormatNames() []string {
	out := make([]string, len(formatNames))
	copy(out, formatNames[:])
	return out
}

// ParseFormat maps a user supplied name to a Format. Names are matched
// exactly; "DNSMASQ" is rejected like any other unknown value.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return DefaultFormat, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(formatNames[:], ", "))
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Render produces the record for one domain without a trailing terminator.
// Unbound records span two lines separated by "\n".
func (f Format) Render(domain string) string {
	return string(f.Append(nil, domain))
}

// Append writes the record for domain to b and returns the extended slice.
// It is the allocation-free path used by the output writer.
func (f Format) Append(b []byte, domain string) []byte {
	switch f {
	case FormatHosts:
		b = append(b, SinkholeAddress...)
		b = append(b, ' ')
		b = append(b, domain...)
	case FormatUnbound:
		b = append(b, `local-zone: "`...)
		b = append(b, domain...)
		b = append(b, `" redirect`...)
		b = append(b, '\n')
		b = append(b, `local-data: "`...)
		b = append(b, domain...)
		b = append(b, " A "...)
		b = append(b, SinkholeAddress...)
		b = append(b, '"')
	default:
		b = append(b, "address=/"...)
		b = append(b, domain...)
		b = append(b, '/')
		b = append(b, SinkholeAddress...)
	}
	return b
}
