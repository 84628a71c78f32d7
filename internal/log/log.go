// Package log defines the toolkit's logger interface. The default writes
// "LEVEL: message" lines to stderr at Warn and above; commands replace it
// with SetLogger according to --quiet/--verbose.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Logger is the logging interface used by the app layer.
type Logger interface {
	Errorf(format string, args ...any)
	Error(args ...any)
	Warnf(format string, args ...any)
	Warn(args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
	Debugf(format string, args ...any)
	Debug(args ...any)
}

// Level orders log severities; messages below the logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

var logger Logger = NewWriterLogger(os.Stderr, LevelWarn)

// SetLogger overwrites the default logger.
func SetLogger(l Logger) { logger = l }

func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Error(args ...any)                 { logger.Error(args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Debug(args ...any)                 { logger.Debug(args...) }

// WriterLogger writes one line per message to an io.Writer.
type WriterLogger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

func NewWriterLogger(w io.Writer, level Level) *WriterLogger {
	return &WriterLogger{w: w, level: level}
}

func (l *WriterLogger) logf(lv Level, format string, args ...any) {
	if lv < l.level {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.w, "%s: %s\n", lv, msg)
}

func (l *WriterLogger) log(lv Level, args ...any) {
	if lv < l.level {
		return
	}
	l.logf(lv, "%s", fmt.Sprint(args...))
}

func (l *WriterLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
func (l *WriterLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *WriterLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *WriterLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *WriterLogger) Error(args ...any)                 { l.log(LevelError, args...) }
func (l *WriterLogger) Warn(args ...any)                  { l.log(LevelWarn, args...) }
func (l *WriterLogger) Info(args ...any)                  { l.log(LevelInfo, args...) }
func (l *WriterLogger) Debug(args ...any)                 { l.log(LevelDebug, args...) }
