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

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "conf/app.ini",
					Status:       "REWRITTEN",
					IsRewritten:  true,
					Replacements: 3,
				})
			},
			wantLogs: []string{
				"⟳ conf/app.ini",
				"REWRITTEN",
				"×3",
			},
		},
		{
			name: "log_run_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRunOperation(context.Background(), RunOperation{
					ConfigPath: ".remaprc.yaml",
					Entries:    3,
					Files:      12,
				})
			},
			wantLogs: []string{
				"[remapping 12 files]",
				"◆ .remaprc.yaml • 3 entries",
			},
		},
		{
			name: "log_dry_run_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRunOperation(context.Background(), RunOperation{
					ConfigPath: ".remaprc.yaml",
					Entries:    1,
					Files:      2,
					DryRun:     true,
				})
			},
			wantLogs: []string{
				"[remapping 2 files (dry run)]",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("applying mapping")
			},
			wantLogs: []string{
				"remaprc • applying mapping",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.Disabled)

			tt.op(t, logger)

			output := buf.String()
			for _, want := range tt.wantLogs {
				assert.Contains(t, output, want, "console output should contain %q", want)
			}
		})
	}
}

func TestLogger_Context(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "context round-trip should return the same logger")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "missing logger should panic")
}

func TestLogger_EndRunOperation(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)
	ctx := context.Background()

	// Ending without a run is a no-op
	logger.EndRunOperation(ctx)

	logger.StartRunOperation(ctx, RunOperation{ConfigPath: ".remaprc.yaml", Entries: 1, Files: 1})
	logger.LogFileOperation(ctx, FileOperation{Path: "a.conf", Status: "UNCHANGED"})
	logger.EndRunOperation(ctx)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "[remapping 1 files]")
}
