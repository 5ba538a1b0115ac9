/*
Package config loads the optional YAML configuration file and merges it with
built-in defaults. Command-line flags are applied on top by the caller.
*/
package config

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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ballessay/hostfileconverter/internal/blocklist"
	"github.com/ballessay/hostfileconverter/internal/core"
)

// File mirrors the YAML document. Pointer fields distinguish "absent" from
// the zero value so that only keys present in the file override defaults.
type File struct {
	Output   *string  `yaml:"output"`
	Path     *string  `yaml:"path"`
	Format   *string  `yaml:"format"`
	Stats    *bool    `yaml:"stats"`
	Sort     *bool    `yaml:"sort"`
	Denylist []string `yaml:"denylist"`
}

// Defaults returns the built-in configuration. Path is left empty; the caller
// resolves it to the current directory.
func Defaults() core.Config {
	return core.Config{
		OutputFile: core.DefaultOutputFile,
		Format:     blocklist.DefaultFormat,
		Denylist:   blocklist.DefaultDenylist(),
		BufferSize: core.DefaultDiskBufferSize,
	}
}

// Load reads path and applies it over Defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (core.Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &core.RunError{Op: "config.load", Kind: core.KindUsage, Path: path, Err: err}
	}

	f, err := Parse(b)
	if err != nil {
		return cfg, &core.RunError{Op: "config.parse", Kind: core.KindUsage, Path: path, Err: err}
	}

	if err := f.Apply(&cfg); err != nil {
		var re *core.RunError
		if errors.As(err, &re) && re.Path == "" {
			re.Path = path
		}
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes a YAML document. Unknown keys are rejected so a typo such as
// "denylsit" fails loudly instead of being ignored. An empty document is valid.
func Parse(b []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("invalid YAML: %w", err)
	}
	return f, nil
}

// Apply copies the keys present in f into cfg. An unrecognized format name
// yields a RunError of kind KindFormat, the same classification the
// --format flag gets.
func (f File) Apply(cfg *core.Config) error {
	if f.Output != nil {
		cfg.OutputFile = *f.Output
	}
	if f.Path != nil {
		cfg.WorkingDir = *f.Path
	}
	if f.Format != nil {
		format, err := blocklist.ParseFormat(*f.Format)
		if err != nil {
			return &core.RunError{Op: "config.format", Kind: core.KindFormat, Err: err}
		}
		cfg.Format = format
	}
	if f.Stats != nil {
		cfg.PrintStats = *f.Stats
	}
	if f.Sort != nil {
		cfg.SortOutput = *f.Sort
	}
	if f.Denylist != nil {
		cfg.Denylist = append([]string(nil), f.Denylist...)
	}
	return nil
}
