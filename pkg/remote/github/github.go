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

// Package github fetches mapping files from GitHub repositories. The
// substitution core stays network-free; this sits strictly in the
// caller layer behind the config "source" block.
package github

import (
	"context"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/pkg/config"
)

// 🎯 Fetcher retrieves mapping files from GitHub
type Fetcher struct {
	client *github.Client
}

// 🏭 New creates a new fetcher. GITHUB_TOKEN is used when set; public
// repositories work without it.
func New(ctx context.Context) *Fetcher {
	client := github.NewClient(nil)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = client.WithAuthToken(token)
	}
	return &Fetcher{client: client}
}

// 🔍 parseRepo parses a GitHub repository URL
func parseRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(repo, "/")
	if len(parts) < 2 {
		return "", "", errors.Errorf("invalid repository format: %s", repo)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// 📥 FetchMapping retrieves the raw content of the mapping file named by
// args
func (f *Fetcher) FetchMapping(ctx context.Context, args *config.SourceArgs) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	owner, name, err := parseRepo(args.Repo)
	if err != nil {
		return nil, errors.Errorf("parsing repo: %w", err)
	}

	logger.Debug().
		Str("repo", args.Repo).
		Str("ref", args.Ref).
		Str("path", args.Path).
		Msg("fetching mapping file")

	content, _, _, err := f.client.Repositories.GetContents(ctx, owner, name, args.Path, &github.RepositoryContentGetOptions{
		Ref: args.Ref,
	})
	if err != nil {
		return nil, errors.Errorf("getting file contents: %w", err)
	}
	if content == nil {
		return nil, errors.Errorf("%s is a directory, not a mapping file", args.Path)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return nil, errors.Errorf("decoding file contents: %w", err)
	}

	return []byte(decoded), nil
}

// 📂 LoadMapping fetches the mapping file and parses it with the parser
// registered for its filename, returning only the mapping entries. The
// remote file's files/ignore/source settings are deliberately ignored:
// which payload files to touch is always the local caller's decision.
func (f *Fetcher) LoadMapping(ctx context.Context, args *config.SourceArgs) ([]config.MappingEntry, error) {
	data, err := f.FetchMapping(ctx, args)
	if err != nil {
		return nil, err
	}

	parser := config.GetParser(args.Path)
	if parser == nil {
		return nil, errors.Errorf("no parser registered for %q", args.Path)
	}

	cfg, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing remote mapping %s: %w", args.Path, err)
	}

	return cfg.Mapping, nil
}
