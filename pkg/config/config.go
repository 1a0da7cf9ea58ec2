// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/pkg/rewrite"
)

// 🔄 MappingEntry represents one (search, replace) record as declared in
// the config file
type MappingEntry struct {
	Search  string // Literal text to look for
	Replace string // Text to substitute (empty deletes)
}

// 📦 SourceArgs points at a mapping file hosted in a remote repository
type SourceArgs struct {
	Repo string // Full repo URL (e.g. github.com/org/repo)
	Ref  string // Branch or tag
	Path string // Path of the mapping file within the repo
}

// 📚 Config represents the complete configuration
type Config struct {
	Mapping    []MappingEntry // Ordered substitution records
	Files      []string       // Glob patterns selecting payload files
	Ignore     []string       // Glob patterns excluded from Files
	Reversible bool           // Also reject duplicate replace values
	Async      bool           // Process payload files concurrently
	Source     *SourceArgs    // Optional remote mapping source
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Source != nil {
		if cfg.Source.Repo == "" {
			return errors.Errorf("source.repo is required")
		}
		if cfg.Source.Path == "" {
			return errors.Errorf("source.path is required")
		}
		if cfg.Source.Ref == "" {
			cfg.Source.Ref = "main"
		}
	} else if len(cfg.Mapping) == 0 {
		return errors.Errorf("mapping is required when no source is configured")
	}

	return nil
}

// 📋 Entries converts the declared mapping into engine entries, in
// declaration order
func (cfg *Config) Entries() []rewrite.Entry {
	entries := make([]rewrite.Entry, len(cfg.Mapping))
	for i, m := range cfg.Mapping {
		entries[i] = rewrite.Entry{Search: m.Search, Replace: m.Replace}
	}
	return entries
}

// 📋 Table validates the declared mapping and returns the engine table.
// With Reversible set, the opt-in duplicate-replace check runs as well.
func (cfg *Config) Table() (rewrite.Table, error) {
	table, err := rewrite.Validate(cfg.Entries())
	if err != nil {
		return rewrite.Table{}, errors.Errorf("validating mapping: %w", err)
	}

	if cfg.Reversible {
		if err := rewrite.ValidateReversible(table); err != nil {
			return rewrite.Table{}, errors.Errorf("validating mapping for reversal: %w", err)
		}
	}

	return table, nil
}
