// Package logging は charmbracelet/log を使ってサーバーのロガーを作成します。
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options はロガーの設定です。
type Options struct {
	Level     string
	Format    string
	Prefix    string
	Timestamp bool
}

// New は w に書き込むロガーを作成します。
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormatter(opts.Format),
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Timestamp,
	})
}

// ParseLevel はレベル名を log.Level に変換します。不明な場合は info です。
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter はフォーマット名を log.Formatter に変換します。不明な場合は text です。
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// ValidLevel は level が既知のレベル名かどうかを返します。
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// ValidFormat は format が既知のフォーマット名かどうかを返します。
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "json", "logfmt":
		return true
	}
	return false
}
