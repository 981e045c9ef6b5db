// Package logging writes structured JSON logs for cyberarsenal sessions.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cyberarsenal/cyberarsenal/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger that adds the given key-value pairs to every entry.
	With(args ...any) Logger
	// Shutdown closes the log file.
	Shutdown() error
}

type fileLogger struct {
	mu       sync.RWMutex
	clogger  *clog.Logger
	closer   io.Closer
	redactor *redactor
	fields   map[string]any
	path     string
}

// Init opens a new session log file. A disabled config yields a logger
// that discards everything.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	dir, err := LogDir()
	if err != nil {
		return nil, fmt.Errorf("determine log directory: %w", err)
	}
	if err := rotate(dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	path := filepath.Join(dir, fileName(cfg, time.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := newFileLogger(f, cfg)
	l.closer = f
	l.path = path
	return l, nil
}

func newFileLogger(w io.Writer, cfg Config) *fileLogger {
	clogger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
	})
	clogger.SetFormatter(clog.JSONFormatter)
	return &fileLogger{
		clogger:  clogger.With("pid", cfg.PID, "command", cfg.Command),
		redactor: newRedactor(),
		fields:   make(map[string]any),
	}
}

func fileName(cfg Config, now time.Time) string {
	return fmt.Sprintf("%s%s_PID%d_%s.log",
		filePrefix,
		now.Format("20060102_150405"),
		cfg.PID,
		strings.ReplaceAll(cfg.Command, " ", "_"))
}

func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *fileLogger) Debug(msg string, args ...any) { l.log(clog.DebugLevel, msg, args) }
func (l *fileLogger) Info(msg string, args ...any)  { l.log(clog.InfoLevel, msg, args) }
func (l *fileLogger) Warn(msg string, args ...any)  { l.log(clog.WarnLevel, msg, args) }
func (l *fileLogger) Error(msg string, args ...any) { l.log(clog.ErrorLevel, msg, args) }

func (l *fileLogger) log(level clog.Level, msg string, args []any) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	all := make([]any, 0, len(keys)*2+len(args))
	for _, k := range keys {
		all = append(all, k, l.fields[k])
	}
	all = append(all, args...)
	l.clogger.Log(level, msg, l.redactor.redact(all)...)
}

func (l *fileLogger) With(args ...any) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	fields := make(map[string]any, len(l.fields)+len(args)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			fields[key] = args[i+1]
		}
	}
	return &fileLogger{
		clogger:  l.clogger,
		closer:   l.closer,
		redactor: l.redactor,
		fields:   fields,
		path:     l.path,
	}
}

func (l *fileLogger) Shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

var (
	globalLogger   Logger
	globalLoggerMu sync.RWMutex
)

// InitGlobal opens the process-wide logger from the loaded configuration
// and mirrors colors output into it. Later calls are no-ops until
// ShutdownGlobal.
func InitGlobal(command string) error {
	globalLoggerMu.Lock()
	if globalLogger != nil {
		globalLoggerMu.Unlock()
		return nil
	}
	cfg := FromGlobalConfig()
	if command != "" {
		cfg.Command = command
	}
	l, err := Init(cfg)
	if err != nil {
		globalLoggerMu.Unlock()
		return err
	}
	globalLogger = l
	globalLoggerMu.Unlock()

	colors.SetLogger(l)
	if path := CurrentLogFile(); path != "" {
		colors.Debug("logging to file:", path)
	}
	return nil
}

// GetGlobal returns the global logger, or a no-op logger before InitGlobal.
func GetGlobal() Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) { GetGlobal().Debug(msg, args...) }

// Info logs an info message using the global logger.
func Info(msg string, args ...any) { GetGlobal().Info(msg, args...) }

// Warn logs a warning using the global logger.
func Warn(msg string, args ...any) { GetGlobal().Warn(msg, args...) }

// Error logs an error using the global logger.
func Error(msg string, args ...any) { GetGlobal().Error(msg, args...) }

// With derives a logger from the global one.
func With(args ...any) Logger { return GetGlobal().With(args...) }

// ShutdownGlobal closes the global logger and detaches it from colors.
func ShutdownGlobal() error {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger == nil {
		return nil
	}
	err := globalLogger.Shutdown()
	globalLogger = nil
	colors.SetLogger(nil)
	return err
}

// CurrentLogFile returns the path of the active log file, or "" when
// logging is disabled.
func CurrentLogFile() string {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if l, ok := globalLogger.(*fileLogger); ok {
		return l.path
	}
	return ""
}
