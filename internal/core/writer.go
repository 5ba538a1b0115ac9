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
	"github.com/ballessay/hostfileconverter/internal/blocklist"
	fio "github.com/ballessay/hostfileconverter/internal/io"
)

// WriteResult reports what WriteDomains put on disk.
type WriteResult struct {
	Records      int64
	BytesWritten int64
}

// WriteDomains truncates path and writes one formatted record per domain,
// each followed by a line terminator. Order follows set iteration (random)
// unless sorted is true. On error the file may be left partially written.
func WriteDomains(path string, domains *blocklist.DomainSet, format blocklist.Format, sorted bool, bufferSize int) (WriteResult, error) {
	var res WriteResult

	out, err := fio.CreateOutputFile(path, &fio.OutputOptions{BufferSize: bufferSize})
	if err != nil {
		return res, ioError("output.create", path, err)
	}

	list := domains.Domains()
	if sorted {
		list = domains.SortedDomains()
	}

	// One scratch buffer for all records.
	record := make([]byte, 0, 128)
	for _, domain := range list {
		record = format.Append(record[:0], domain)
		if err := out.WriteLine(record); err != nil {
			_ = out.Close()
			res.BytesWritten = out.GetMetrics().BytesWritten
			return res, ioError("output.write", path, err)
		}
		res.Records++
	}

	if err := out.Close(); err != nil {
		return res, ioError("output.close", path, err)
	}
	res.BytesWritten = out.GetMetrics().BytesWritten
	return res, nil
}
