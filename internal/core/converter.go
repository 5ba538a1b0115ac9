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
	"io"
	"log/slog"
	"time"

	"github.com/ballessay/hostfileconverter/internal/blocklist"
	"github.com/ballessay/hostfileconverter/internal/metrics"
)

// Deps are the collaborators a Converter reports through. Every field is
// optional.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Stdout  io.Writer // statistics output
}

// Converter runs the whole pipeline once: list sources, merge them, write
// the output, report.
type Converter struct {
	config   Config
	denylist *blocklist.Denylist
	logger   *slog.Logger
	metrics  *metrics.Metrics
	reporter *Reporter
}

// NewConverter prepares a run. The denylist is built here, once, from
// config.Denylist.
func NewConverter(config Config, deps Deps) *Converter {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultDiskBufferSize
	}
	if config.OutputFile == "" {
		config.OutputFile = DefaultOutputFile
	}
	if config.WorkingDir == "" {
		config.WorkingDir = "."
	}

	return &Converter{
		config:   config,
		denylist: blocklist.NewDenylist(config.Denylist),
		logger:   logger,
		metrics:  deps.Metrics,
		reporter: NewReporter(deps.Stdout, config.PrintStats),
	}
}

// Run executes the conversion. The first I/O error aborts the run; stats
// gathered up to that point are returned alongside it.
func (c *Converter) Run() (*RunStats, error) {
	stats := &RunStats{
		WorkingDir: c.config.WorkingDir,
		OutputPath: c.config.OutputPath(),
		Format:     c.config.Format,
		StartTime:  time.Now(),
	}
	c.logger.Info("converter.start",
		"working_dir", stats.WorkingDir,
		"output", stats.OutputPath,
		"format", stats.Format.String(),
		"denylist", c.denylist.Len())

	sources, err := ListSources(c.config.WorkingDir, stats.OutputPath, c.logger)
	if err != nil {
		return stats, err
	}
	if len(sources) == 0 {
		c.logger.Warn("converter.no_sources", "working_dir", c.config.WorkingDir, "pattern", SourcePattern)
	}

	merger := NewMerger(c.denylist, c.config.BufferSize, c.logger, c.metrics)
	for _, path := range sources {
		fs, err := merger.MergeFile(path)
		stats.TotalLines = merger.TotalLines()
		if err != nil {
			return stats, err
		}
		stats.Files = append(stats.Files, fs)
		c.reporter.File(fs)
	}

	domains := merger.Domains()
	stats.UniqueDomains = domains.Len()
	stats.Digest = domains.DigestString()

	res, err := WriteDomains(stats.OutputPath, domains, c.config.Format, c.config.SortOutput, c.config.BufferSize)
	stats.Records = res.Records
	stats.BytesWritten = res.BytesWritten
	if err != nil {
		return stats, err
	}
	stats.Elapsed = time.Since(stats.StartTime)

	c.metrics.RecordOutput(c.config.Format.String(), stats.UniqueDomains, stats.Records, stats.BytesWritten)
	c.metrics.RecordRun(len(sources), c.denylist.Len(), stats.Elapsed, time.Now())

	c.logger.Info("converter.done",
		"sources", len(sources),
		"lines", stats.TotalLines,
		"unique_domains", stats.UniqueDomains,
		"digest", stats.Digest,
		"bytes", stats.BytesWritten,
		"elapsed", stats.Elapsed.Round(time.Millisecond))

	c.reporter.Summary(stats)
	return stats, nil
}
