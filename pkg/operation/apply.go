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

package operation

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/pkg/rewrite"
	"github.com/walteh/remaprc/pkg/status"
)

// 🏃 Apply runs the substitution over every resolved payload file.
//
// The mapping table is validated before any file is opened: partial
// application is never acceptable, so a bad table aborts the whole run
// with every offending key listed. Each file gets its own engine call —
// and therefore its own placeholder tokens — so async runs share no
// engine state.
func (o *Operator) Apply(ctx context.Context, explicit []string) error {
	table, err := o.config.Table()
	if err != nil {
		return err
	}

	files, err := o.resolveFiles(ctx, explicit)
	if err != nil {
		return errors.Errorf("resolving payload files: %w", err)
	}

	o.statusMgr.StartRun(ctx, len(files))
	defer o.statusMgr.FinishRun(ctx)

	if o.config.Async {
		g, gctx := errgroup.WithContext(ctx)
		var processed atomic.Int64
		for _, file := range files {
			file := file
			g.Go(func() error {
				if err := o.processFile(gctx, table, file); err != nil {
					return err
				}
				o.statusMgr.UpdateProgress(gctx, int(processed.Add(1)))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for i, file := range files {
			if err := o.processFile(ctx, table, file); err != nil {
				return err
			}
			o.statusMgr.UpdateProgress(ctx, i+1)
		}
	}

	o.logSummary(ctx, len(files))
	return nil
}

// 📄 processFile applies the table to a single payload file
func (o *Operator) processFile(ctx context.Context, table rewrite.Table, file string) error {
	content, err := o.statusMgr.ReadFile(ctx, file)
	if err != nil {
		o.trackChange(ctx, file, status.FileInfo{Status: status.StatusFailed, Error: err})
		return errors.Errorf("processing file %s: %w", file, err)
	}

	result := rewrite.ApplyResult(table, string(content))

	if !result.WasModified {
		o.trackChange(ctx, file, status.FileInfo{
			Status:   status.StatusUnchanged,
			Checksum: status.Checksum(content),
		})
		return nil
	}

	if !o.dryRun {
		if o.backup {
			if err := o.statusMgr.BackupFile(ctx, file); err != nil {
				return errors.Errorf("backing up %s: %w", file, err)
			}
		}
		if err := o.statusMgr.WriteFileAtomic(ctx, file, []byte(result.ModifiedContent)); err != nil {
			o.trackChange(ctx, file, status.FileInfo{Status: status.StatusFailed, Error: err})
			return errors.Errorf("writing %s: %w", file, err)
		}
	}

	o.trackChange(ctx, file, status.FileInfo{
		Status:       status.StatusRewritten,
		Replacements: result.ReplacementCount,
		Checksum:     status.Checksum([]byte(result.ModifiedContent)),
	})
	return nil
}

// 📝 trackChange records the outcome and mirrors it to the user logger
func (o *Operator) trackChange(ctx context.Context, file string, info status.FileInfo) {
	o.statusMgr.TrackFile(ctx, file, info)

	if o.userLogger == nil {
		return
	}

	change := status.FileChange{Path: file, Replacements: info.Replacements, Error: info.Error}
	switch info.Status {
	case status.StatusRewritten:
		change.Type = status.FileRewritten
	case status.StatusSkipped:
		change.Type = status.FileSkipped
	case status.StatusFailed:
		change.Type = status.FileError
	default:
		change.Type = status.FileUnchanged
	}
	o.userLogger.LogFileChange(change)
}

// 📊 logSummary reports run totals through the user logger
func (o *Operator) logSummary(ctx context.Context, files int) {
	if o.userLogger == nil {
		return
	}

	rewritten := 0
	for _, info := range o.statusMgr.ListFiles(ctx) {
		if info.Status == status.StatusRewritten {
			rewritten++
		}
	}
	o.userLogger.LogRunSummary(files, rewritten, o.statusMgr.TotalReplacements(ctx))
}
