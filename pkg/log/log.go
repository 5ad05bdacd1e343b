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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 50 // Base width for template path
	statusWidth  = 12 // Width for status text
	tool         = "varsubst"
	defaultLabel = "VarSubstitution"
)

// 🎯 FileOperation represents a template file operation for logging
type FileOperation struct {
	Path         string // Template path
	Status       string // Operation status
	IsModified   bool   // Whether the template changed
	IsDryRun     bool   // Whether the change was only computed
	IsFailed     bool   // Whether processing failed
	Replacements int    // Number of replacements made
}

// 📦 RunOperation describes one substitution run for logging
type RunOperation struct {
	Manifest string // Manifest the settings came from
	Pattern  string // Delimiter in use
	Rules    int    // Number of configured rules
	Files    int    // Number of templates to process
}

// 🎯 Logger handles structured logging with console output.
//
// It also serves as the engine's diagnostic sink: every Record call prints a
// "label: message" line.
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	operations []FileOperation
}

// 🏭 NewWithZerolog creates a logger mirroring to an existing zerolog logger
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📝 Record prints one engine diagnostic as "label: message"
func (l *Logger) Record(message, label string) {
	if label == "" {
		label = defaultLabel
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s: %s\n", color.New(color.FgMagenta).Sprint(label), message)
	l.zlog.Debug().Str("label", label).Msg(message)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsModified && op.IsDryRun:
		symbol = '~'
		symbolColor = color.FgYellow
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	replacements := fmt.Sprintf("%d replacements", op.Replacements)
	if op.Replacements == 1 {
		replacements = "1 replacement"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		fmt.Sprintf("%-*s", statusWidth, op.Status),
		color.New(color.Faint).Sprint(replacements))
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	l.zlog.Info().
		Str("file", op.Path).
		Str("status", op.Status).
		Bool("is_modified", op.IsModified).
		Bool("is_dry_run", op.IsDryRun).
		Bool("is_failed", op.IsFailed).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 StartRun starts a new substitution run
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.operations = nil

	manifest := op.Manifest
	if manifest == "" {
		manifest = "defaults"
	}

	fmt.Fprintf(l.console, "[substituting %s]\n",
		color.New(color.FgCyan).Sprint(manifest))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Pattern),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprintf("%d rules", op.Rules))

	l.zlog.Info().
		Str("manifest", op.Manifest).
		Str("pattern", op.Pattern).
		Int("rules", op.Rules).
		Int("files", op.Files).
		Msg("starting substitution run")
}

// 📝 EndRun ends the current run and returns the file operations it logged
func (l *Logger) EndRun(ctx context.Context) []FileOperation {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return nil
	}

	total := 0
	for _, op := range l.operations {
		total += op.Replacements
	}

	l.zlog.Info().
		Str("manifest", l.currentRun.Manifest).
		Int("files", len(l.operations)).
		Int("replacements", total).
		Msg("substitution run complete")

	ops := l.operations
	l.currentRun = nil
	l.operations = nil
	return ops
}

// 📝 Header prints the tool banner followed by msg
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "\n%s %s\n\n",
		color.New(color.Bold, color.FgCyan).Sprint(tool),
		color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 🎨 notice is one kind of one-line console message
type notice struct {
	symbol string
	attr   color.Attribute
	level  zerolog.Level
}

var (
	noticeInfo    = notice{symbol: "ℹ️ ", attr: color.FgCyan, level: zerolog.InfoLevel}
	noticeSuccess = notice{symbol: "✅", attr: color.FgGreen, level: zerolog.InfoLevel}
	noticeWarning = notice{symbol: "⚠️ ", attr: color.FgYellow, level: zerolog.WarnLevel}
	noticeError   = notice{symbol: "❌", attr: color.FgRed, level: zerolog.ErrorLevel}
)

func (l *Logger) print(n notice, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", n.symbol, color.New(n.attr).Sprint(msg))
	l.zlog.WithLevel(n.level).Msg(msg)
}

// Infof prints an informational line
func (l *Logger) Infof(format string, args ...any) { l.print(noticeInfo, format, args...) }

// Successf prints a success line
func (l *Logger) Successf(format string, args ...any) { l.print(noticeSuccess, format, args...) }

// Warningf prints a warning and mirrors it to zerolog at warn level
func (l *Logger) Warningf(format string, args ...any) { l.print(noticeWarning, format, args...) }

// Errorf prints an error line
func (l *Logger) Errorf(format string, args ...any) { l.print(noticeError, format, args...) }
