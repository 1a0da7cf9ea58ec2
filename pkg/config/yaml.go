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
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define YAML schema
	type yamlConfig struct {
		Mapping []struct {
			Search  string `yaml:"search"`
			Replace string `yaml:"replace"`
		} `yaml:"mapping,omitempty"`
		Files      []string `yaml:"files,omitempty"`
		Ignore     []string `yaml:"ignore,omitempty"`
		Reversible bool     `yaml:"reversible,omitempty"`
		Async      bool     `yaml:"async,omitempty"`
		Source     *struct {
			Repo string `yaml:"repo"`
			Ref  string `yaml:"ref,omitempty"`
			Path string `yaml:"path"`
		} `yaml:"source,omitempty"`
	}

	// Parse YAML
	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	// Convert to model
	cfg := &Config{
		Files:      yamlCfg.Files,
		Ignore:     yamlCfg.Ignore,
		Reversible: yamlCfg.Reversible,
		Async:      yamlCfg.Async,
	}

	for _, m := range yamlCfg.Mapping {
		cfg.Mapping = append(cfg.Mapping, MappingEntry{
			Search:  m.Search,
			Replace: m.Replace,
		})
	}

	if yamlCfg.Source != nil {
		cfg.Source = &SourceArgs{
			Repo: yamlCfg.Source.Repo,
			Ref:  yamlCfg.Source.Ref,
			Path: yamlCfg.Source.Path,
		}
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
