/*
Package main is the entry point for the hostfileconverter command-line application.

hostfileconverter merges every "*.hosts" blocklist found in a working directory
into one deduplicated file that a DNS blocker can load directly. Supported
output dialects:
  - dnsmasq (default): address=/DOMAIN/127.0.0.1
  - hosts:             127.0.0.1 DOMAIN
  - unbound:           local-zone/local-data pair per domain

The source lists are downloaded by hand; most publishers forbid automated
fetching, so the tool never touches the network. Entries known to cover shared
infrastructure (blog hosts, dynamic DNS, object storage) are dropped through a
denylist that an optional YAML config file can replace.

The application uses the Cobra library for flag parsing and help output and
leverages several internal packages:
  - `internal/blocklist`: line classification, domain extraction, denylist, output formats.
  - `internal/core`: source discovery, merging, writing and statistics.
  - `internal/config`: the YAML configuration file.
  - `internal/metrics`: Prometheus counters exported to a node_exporter textfile.

Exit codes: 0 on success or help, 2 for flag and config errors, 3 for an
unknown output format, 1 for I/O failures.
*/
package main

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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ballessay/hostfileconverter/internal/blocklist"
	"github.com/ballessay/hostfileconverter/internal/config"
	"github.com/ballessay/hostfileconverter/internal/core"
	"github.com/ballessay/hostfileconverter/internal/logger"
	"github.com/ballessay/hostfileconverter/internal/metrics"
)

// options are the raw flag values. Only flags the user actually set are
// applied over the config file, see resolveConfig.
type options struct {
	output      string
	path        string
	format      string
	configFile  string
	metricsFile string
	stats       bool
	sort        bool
	debug       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit code.
// Usage problems print the error and the usage text to stdout; I/O failures
// print the error to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	code := core.ExitCode(err)
	switch code {
	case core.ExitOK:
	case core.ExitUsage, core.ExitFormat:
		fmt.Fprintf(stdout, "Error: %v\n", err)
		fmt.Fprint(stdout, cmd.UsageString())
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		opts options
		cfg  core.Config
	)

	cmd := &cobra.Command{
		Use:   "hostfileconverter",
		Short: "Merge *.hosts blocklists into one hosts, dnsmasq or unbound file",
		Long: `Reads every *.hosts file in the working directory, skips comments and blank
lines, takes the domain from "IP domain" or "domain" lines, drops denylisted
entries and writes each unique domain once in the chosen output format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &core.RunError{
					Op:   "flags.args",
					Kind: core.KindUsage,
					Err:  fmt.Errorf("unexpected arguments: %s", strings.Join(args, " ")),
				}
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = resolveConfig(cmd, opts)
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			log := logger.New(logger.Config{Output: stderr, Debug: opts.debug})
			m := metrics.New(opts.metricsFile != "")

			converter := core.NewConverter(cfg, core.Deps{
				Logger:  log,
				Metrics: m,
				Stdout:  stdout,
			})
			if _, err := converter.Run(); err != nil {
				return err
			}

			if err := m.WriteTextfile(opts.metricsFile); err != nil {
				return &core.RunError{Op: "metrics.write", Kind: core.KindIO, Path: opts.metricsFile, Err: err}
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &core.RunError{Op: "flags.parse", Kind: core.KindUsage, Err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", core.DefaultOutputFile, "name of the output file, written into the working directory")
	flags.StringVarP(&opts.path, "path", "p", "", "working directory to scan and write into (default: current directory)")
	flags.StringVarP(&opts.format, "format", "f", blocklist.DefaultFormat.String(),
		"output file format: "+strings.Join(blocklist.FormatNames(), ", "))
	flags.BoolVarP(&opts.stats, "stats", "s", false, "print per-file and overall statistics")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML config file; explicit flags override its values")
	flags.BoolVar(&opts.sort, "sort", false, "write domains in sorted order instead of arbitrary order")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics for the run to this textfile")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
// The format name is validated here, before anything touches the disk.
func resolveConfig(cmd *cobra.Command, opts options) (core.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		format, err := blocklist.ParseFormat(opts.format)
		if err != nil {
			return cfg, &core.RunError{Op: "flags.format", Kind: core.KindFormat, Err: err}
		}
		cfg.Format = format
	}
	if flags.Changed("output") {
		cfg.OutputFile = opts.output
	}
	if flags.Changed("path") {
		cfg.WorkingDir = opts.path
	}
	if flags.Changed("stats") {
		cfg.PrintStats = opts.stats
	}
	if flags.Changed("sort") {
		cfg.SortOutput = opts.sort
	}

	if cfg.WorkingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return cfg, &core.RunError{Op: "config.working_dir", Kind: core.KindIO, Err: err}
		}
		cfg.WorkingDir = wd
	}
	return cfg, nil
}
