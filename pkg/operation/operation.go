// Package operation orchestrates substitution runs over payload files
package operation

import (
	"context"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/pkg/config"
	"github.com/walteh/remaprc/pkg/status"
)

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the remaprc configuration
	Config *config.Config
	// StatusMgr owns payload file I/O and result tracking
	StatusMgr *status.Manager
	// UserLogger provides console feedback (optional)
	UserLogger *status.UserLogger
	// DryRun reports what would change without writing any file
	DryRun bool
	// Backup copies each file aside before rewriting it
	Backup bool
}

// 🎮 Operator runs apply/check/contexts operations
type Operator struct {
	config     *config.Config
	statusMgr  *status.Manager
	userLogger *status.UserLogger
	dryRun     bool
	backup     bool
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return nil, errors.Errorf("status manager is required")
	}
	return &Operator{
		config:     opts.Config,
		statusMgr:  opts.StatusMgr,
		userLogger: opts.UserLogger,
		dryRun:     opts.DryRun,
		backup:     opts.Backup,
	}, nil
}

// 📂 resolveFiles expands the configured file globs (or uses the
// explicitly given paths) and drops everything matching an ignore
// pattern. Which files to feed the engine is entirely a caller concern;
// the substitution core never walks directories itself.
func (o *Operator) resolveFiles(ctx context.Context, explicit []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var candidates []string
	if len(explicit) > 0 {
		candidates = explicit
	} else {
		seen := make(map[string]struct{})
		for _, pattern := range o.config.Files {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, errors.Errorf("expanding glob %q: %w", pattern, err)
			}
			for _, m := range matches {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				candidates = append(candidates, m)
			}
		}
		sort.Strings(candidates)
	}

	var files []string
	for _, f := range candidates {
		ignored, err := o.shouldIgnore(f)
		if err != nil {
			logger.Debug().Str("file", f).Err(err).Msg("error matching ignore pattern")
			continue
		}
		if ignored {
			logger.Debug().Str("file", f).Msg("file ignored by pattern")
			o.statusMgr.TrackFile(ctx, f, status.FileInfo{Status: status.StatusSkipped})
			continue
		}
		files = append(files, f)
	}

	return files, nil
}

// 🔍 shouldIgnore checks if a file matches an ignore pattern
func (o *Operator) shouldIgnore(path string) (bool, error) {
	for _, pattern := range o.config.Ignore {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, errors.Errorf("matching pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
