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
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/ballessay/hostfileconverter/internal/blocklist"
	fio "github.com/ballessay/hostfileconverter/internal/io"
	"github.com/ballessay/hostfileconverter/internal/metrics"
)

// Merger folds source lists into one DomainSet.
// Each line goes through classifier, extractor and denylist in that order;
// survivors are added to the set. Files are processed one at a time and the
// Merger is not safe for concurrent use.
type Merger struct {
	denylist   *blocklist.Denylist
	domains    *blocklist.DomainSet
	totalLines int64
	bufferSize int
	logger     *slog.Logger
	metrics    *metrics.Metrics
	deniedLog  rate.Sometimes
}

// NewMerger creates a Merger with an empty set. logger and m may be nil.
func NewMerger(denylist *blocklist.Denylist, bufferSize int, logger *slog.Logger, m *metrics.Metrics) *Merger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Merger{
		denylist:   denylist,
		domains:    blocklist.NewDomainSet(),
		bufferSize: bufferSize,
		logger:     logger,
		metrics:    m,
		deniedLog:  rate.Sometimes{First: DeniedLogBurst, Interval: DeniedLogInterval},
	}
}

// MergeFile reads path line by line and adds its domains to the set.
// The returned stats count per file: a domain already contributed by an
// earlier file still counts as kept here.
func (m *Merger) MergeFile(path string) (FileStats, error) {
	start := time.Now()
	stats := FileStats{Path: path}

	lines, err := fio.ReadLines(path, m.bufferSize, func(line string) {
		m.processLine(line, &stats)
	})
	stats.Lines = lines
	stats.Elapsed = time.Since(start)
	m.totalLines += lines
	if err != nil {
		return stats, ioError("merge.read", path, err)
	}

	m.metrics.RecordSource(filepath.Base(path), metrics.SourceCounts{
		Lines:    stats.Lines,
		Relevant: stats.Relevant,
		Domains:  stats.WithDomain,
		Kept:     stats.Kept,
		Denied:   stats.Denied,
	}, stats.Elapsed)

	m.logger.Debug("merge.file_done",
		"path", path,
		"lines", stats.Lines,
		"relevant", stats.Relevant,
		"kept", stats.Kept,
		"unique_total", m.domains.Len(),
		"elapsed", stats.Elapsed)
	return stats, nil
}

// processLine is the per-line hot path.
func (m *Merger) processLine(line string, stats *FileStats) {
	if !blocklist.Relevant(line) {
		return
	}
	stats.Relevant++

	domain, ok := blocklist.DomainFromLine(line)
	if !ok {
		return
	}
	stats.WithDomain++

	if !m.denylist.Allowed(domain) {
		stats.Denied++
		m.deniedLog.Do(func() {
			m.logger.Debug("merge.domain_denied", "domain", domain, "path", stats.Path)
		})
		return
	}
	stats.Kept++
	m.domains.Add(domain)
}

// Domains returns the accumulated set. Callers must stop merging before
// they start writing it out.
func (m *Merger) Domains() *blocklist.DomainSet { return m.domains }

// TotalLines returns the raw line count across all merged files.
func (m *Merger) TotalLines() int64 { return m.totalLines }
