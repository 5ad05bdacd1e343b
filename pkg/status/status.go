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
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of processing a template
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Substitution changed the template
	StatusUnchanged            // Substitution left the template as it was
	StatusFailed               // Processing failed, the file was not touched
	StatusRestored             // Template was restored from its backup
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	case StatusRestored:
		return "restored"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a processed template
type FileInfo struct {
	Path         string      // Path as given to the manager
	Status       FileStatus  // Current status
	Size         int64       // Size of the content on disk after processing
	Mode         os.FileMode // File permissions
	Checksum     string      // Content hash after processing
	Replacements int         // Number of replacements made
	DryRun       bool        // Whether the result was only computed
	Error        error       // Any error associated with this file
}

// 💾 FileManager handles template file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	FileExists(ctx context.Context, path string) (bool, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
	BackupFile(ctx context.Context, path string) error
	RestoreFile(ctx context.Context, path string) error
}

// 📈 StatusReporter tracks template status and reports progress
type StatusReporter interface {
	TrackFile(ctx context.Context, path string, info FileInfo)
	GetFileInfo(ctx context.Context, path string) (FileInfo, error)
	ListFiles(ctx context.Context) ([]FileInfo, error)

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir   string          // Base directory for relative paths
	logger    *zerolog.Logger // Logger for status updates
	formatter FileFormatter   // Formatter for status messages

	mu    sync.RWMutex
	files map[string]FileInfo

	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(baseDir string, logger *zerolog.Logger) *Manager {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// WithFormatter replaces the formatter used for status messages
func (m *Manager) WithFormatter(f FileFormatter) *Manager {
	m.formatter = f
	return m
}

// BaseDir returns the directory relative paths resolve against
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// resolve maps path onto the base directory unless it is absolute
func (m *Manager) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// ReadFile returns the whole template
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.resolve(path))
	if err != nil {
		return nil, errors.Errorf("reading template %s: %w", path, err)
	}
	zerolog.Ctx(ctx).Trace().Str("path", path).Int("bytes", len(content)).Msg("read template")
	return content, nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	switch _, err := os.Stat(m.resolve(path)); {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, errors.Errorf("stat %s: %w", path, err)
	}
}

// WriteFileAtomic replaces the template in one rename. An existing file
// keeps its permissions; a new one gets 0644.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	target := m.resolve(path)

	perm := fs.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	if err := writeAtomic(target, content, perm); err != nil {
		return errors.Errorf("writing template %s: %w", path, err)
	}

	m.logger.Debug().Str("path", target).Int("bytes", len(content)).Msg("wrote template")
	return nil
}

// BackupPath returns the path of the backup kept for path
func BackupPath(path string) string {
	return path + ".bak"
}

// BackupFile saves the current template next to it. A template that does
// not exist yet has nothing to back up.
func (m *Manager) BackupFile(ctx context.Context, path string) error {
	target := m.resolve(path)

	info, err := os.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Errorf("stat %s: %w", path, err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return errors.Errorf("reading template %s: %w", path, err)
	}
	if err := writeAtomic(BackupPath(target), content, info.Mode().Perm()); err != nil {
		return errors.Errorf("backing up %s: %w", path, err)
	}

	m.logger.Debug().Str("path", target).Str("backup", BackupPath(target)).Msg("saved backup")
	return nil
}

// RestoreFile moves the backup back over the template
func (m *Manager) RestoreFile(ctx context.Context, path string) error {
	target := m.resolve(path)
	backup := BackupPath(target)

	if err := os.Rename(backup, target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Errorf("no backup for %s", path)
		}
		return errors.Errorf("restoring %s: %w", path, err)
	}

	m.logger.Debug().Str("path", target).Msg("restored backup")
	return nil
}

// writeAtomic stages content in a hidden temp file beside target and renames
// it into place, so readers never see a partial template.
func writeAtomic(target string, content []byte, perm fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return errors.Errorf("staging: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return errors.Errorf("staging: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return errors.Errorf("staging: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return errors.Errorf("staging: %w", err)
	}
	return os.Rename(tmp.Name(), target)
}

// TrackFile records the outcome for path and logs it through the formatter
func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	info.Path = path

	m.mu.Lock()
	m.files[path] = info
	m.mu.Unlock()

	ev := m.logger.Info()
	msg := m.formatter.FormatFileOperation(path, info.Status, info.Replacements, info.DryRun)
	if info.Error != nil {
		ev = m.logger.Warn().Err(info.Error)
		msg = m.formatter.FormatError(info.Error)
	}
	ev.Str("path", path).
		Stringer("status", info.Status).
		Int("replacements", info.Replacements).
		Msg(msg)
}

func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	info, ok := m.files[path]
	m.mu.RUnlock()

	if !ok {
		return FileInfo{}, errors.Errorf("template not tracked: %s", path)
	}
	return info, nil
}

// ListFiles returns every tracked template ordered by path
func (m *Manager) ListFiles(ctx context.Context) ([]FileInfo, error) {
	m.mu.RLock()
	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	m.mu.RUnlock()

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// StartOperation resets the progress counters for a run over total templates
func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.progress(func() { m.total, m.processed = total, 0 })
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.progress(func() { m.processed = processed })
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.progress(func() {})
}

// progress applies update under the lock and logs the resulting counters
func (m *Manager) progress(update func()) {
	m.mu.Lock()
	update()
	processed, total := m.processed, m.total
	m.mu.Unlock()

	m.logger.Debug().
		Int("processed", processed).
		Int("total", total).
		Msg(m.formatter.FormatProgress(processed, total))
}

// Progress returns how many of the expected templates have been processed
func (m *Manager) Progress() (processed, total int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.processed, m.total
}
