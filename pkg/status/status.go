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

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of a substitution run on a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusRewritten            // File content changed
	StatusUnchanged            // No search key occurred in the file
	StatusSkipped              // File excluded by an ignore pattern
	StatusFailed               // Reading or writing the file failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusRewritten:
		return "rewritten"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the per-file result of one run
type FileInfo struct {
	Path         string     // Path to the payload file
	Status       FileStatus // Outcome for this file
	Replacements int        // Number of substitutions made
	Checksum     string     // Content hash after the run
	Error        error      // Any error associated with this file
}

// 🔧 Manager tracks per-file results and owns payload file I/O
type Manager struct {
	logger    *zerolog.Logger
	formatter FileFormatter

	// Status tracking
	mu    sync.RWMutex
	files map[string]FileInfo

	// Progress tracking
	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(logger *zerolog.Logger) *Manager {
	return &Manager{
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// 🔍 Checksum generates a SHA-256 hash of payload content, used for
// change detection between runs
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// 📥 ReadFile reads a payload file
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// 📤 WriteFileAtomic writes a payload file through a temp file and
// rename, so a crash mid-run never leaves a half-substituted file
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	tempPath := path + ".tmp"

	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 💾 BackupFile copies the file aside before it is rewritten
func (m *Manager) BackupFile(ctx context.Context, path string) error {
	backupPath := path + ".bak"

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Errorf("reading file for backup: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}

	if err := os.WriteFile(backupPath, content, info.Mode()); err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	return nil
}

// 📈 TrackFile records the outcome for one file
func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info.Path = path
	m.files[path] = info

	m.logger.Info().
		Str("file", path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg(m.formatter.FormatFileOperation(path, info.Status, info.Replacements))
}

// 🔍 GetFileInfo returns the recorded outcome for one file
func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("no status tracked for %q", path)
	}
	return info, nil
}

// 📋 ListFiles returns all recorded outcomes sorted by path
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	infos := make([]FileInfo, 0, len(paths))
	for _, p := range paths {
		infos = append(infos, m.files[p])
	}
	return infos
}

// 📊 TotalReplacements sums the substitution counts across all files
func (m *Manager) TotalReplacements(ctx context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, info := range m.files {
		total += info.Replacements
	}
	return total
}

// ▶️ StartRun begins progress tracking for a run over total files
func (m *Manager) StartRun(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	m.logger.Debug().Int("total", total).Msg("starting substitution run")
}

// ⏩ UpdateProgress records how many files have been processed
func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	m.logger.Debug().Msg(m.formatter.FormatProgress(processed, m.total))
}

// 📉 Progress reports how many of the run's files have been processed
func (m *Manager) Progress(ctx context.Context) (processed, total int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.processed, m.total
}

// ⏹️ FinishRun ends progress tracking
func (m *Manager) FinishRun(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg("substitution run complete")
}
