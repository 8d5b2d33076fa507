// Package logging builds leveled loggers and per-session JSON log files.
package logging

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger is the subset of *log.Logger used by the rest of tasker.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:     log.InfoLevel,
		Formatter: log.TextFormatter,
		Prefix:    "tasker",
	}
}

// OptionsFromStrings builds Options from string configuration values.
// This is useful when loading config from TOML or environment variables.
func OptionsFromStrings(level, format string, timestamps, caller bool) Options {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormatter(format)
	opts.ReportTimestamp = timestamps
	opts.ReportCaller = caller
	return opts
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, DefaultOptions())
}

// ParseLevel parses a string log level. Unknown levels map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name. Unknown names map to text.
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

// Tee fans every call out to all loggers.
func Tee(loggers ...Logger) Logger {
	return multiLogger(loggers)
}

type multiLogger []Logger

func (m multiLogger) Debug(msg interface{}, keyvals ...interface{}) {
	for _, l := range m {
		l.Debug(msg, keyvals...)
	}
}

func (m multiLogger) Info(msg interface{}, keyvals ...interface{}) {
	for _, l := range m {
		l.Info(msg, keyvals...)
	}
}

func (m multiLogger) Warn(msg interface{}, keyvals ...interface{}) {
	for _, l := range m {
		l.Warn(msg, keyvals...)
	}
}

func (m multiLogger) Error(msg interface{}, keyvals ...interface{}) {
	for _, l := range m {
		l.Error(msg, keyvals...)
	}
}

// SessionLog manages a per-session JSON log file.
type SessionLog struct {
	Dir     string
	RunID   string
	LogPath string
	Logger  *log.Logger
	file    *os.File
}

// NewSessionLog creates <baseDir>/<workdir-slug>/<run-id>.jsonl and a
// debug-level JSON logger writing to it.
func NewSessionLog(baseDir, workDir string) (*SessionLog, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("log base dir is empty")
	}

	logDir, err := SessionLogDir(baseDir, workDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	id := runID()
	logPath := filepath.Join(logDir, id+".jsonl")
	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	logger := log.NewWithOptions(file, log.Options{
		Level:           log.DebugLevel,
		Formatter:       log.JSONFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	return &SessionLog{
		Dir:     logDir,
		RunID:   id,
		LogPath: logPath,
		Logger:  logger,
		file:    file,
	}, nil
}

// Close closes the log file.
func (s *SessionLog) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

// SessionLogDir returns the directory session logs for workDir are written to.
func SessionLogDir(baseDir, workDir string) (string, error) {
	if baseDir == "" {
		return "", fmt.Errorf("log base dir is empty")
	}

	resolvedWorkDir := workDir
	if resolvedWorkDir == "" {
		resolvedWorkDir = "."
	}
	if abs, err := filepath.Abs(resolvedWorkDir); err == nil {
		resolvedWorkDir = abs
	}

	if !filepath.IsAbs(baseDir) {
		baseDir = filepath.Join(resolvedWorkDir, baseDir)
	}
	return filepath.Join(filepath.Clean(baseDir), dirSlug(resolvedWorkDir)), nil
}

func dirSlug(dir string) string {
	return fmt.Sprintf("%s-%s", slugify(filepath.Base(dir)), hashPath(dir))
}

func slugify(input string) string {
	if strings.TrimSpace(input) == "" {
		return "tasks"
	}

	var b strings.Builder
	lastUnderscore := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		valid := (c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '.' || c == '_' || c == '-'
		if !valid {
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
			continue
		}
		b.WriteByte(c)
		lastUnderscore = false
	}

	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		return "tasks"
	}
	return slug
}

func hashPath(input string) string {
	sum := sha1.Sum([]byte(input))
	return hex.EncodeToString(sum[:])[:8]
}

// runID sorts by start time; the uuid suffix keeps concurrent sessions apart.
func runID() string {
	return fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102-150405"), uuid.NewString()[:8])
}
