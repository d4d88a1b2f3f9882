package logging

import (
	"io"
	"os"
	"sync"
)

// Logger is a structured logger. With* methods return clones so a parser
// can carry its own name, run ID, and fields without affecting the
// logger it was derived from.
type Logger struct {
	mu        sync.Mutex
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	runID     string
	fields    Fields
}

// Config configures a new logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger with default settings: info level, text format,
// stderr output.
func New() *Logger {
	return &Logger{
		level:     DefaultLevel(),
		formatter: GetFormatter(FormatText),
		output:    os.Stderr,
		fields:    make(Fields),
	}
}

// NewWithConfig creates a logger from a Config.
func NewWithConfig(config Config) *Logger {
	l := &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    config.Output,
		name:      config.Name,
		fields:    make(Fields),
	}
	if l.output == nil {
		l.output = os.Stderr
	}
	return l
}

// WithLevel returns a clone with the given minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a clone with the given output format.
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput returns a clone writing to output.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a clone with the given logger name.
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithRunID returns a clone tagged with a parse run ID.
func (l *Logger) WithRunID(runID string) *Logger {
	clone := l.clone()
	clone.runID = runID
	return clone
}

// WithField returns a clone with one persistent field added.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.fields[key] = value
	return clone
}

// WithFields returns a clone with persistent fields added.
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.fields[k] = v
	}
	return clone
}

// Trace logs at trace level.
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs at debug level.
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs at info level.
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs at warn level.
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs at error level.
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs at fatal level and exits.
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// ErrorWithErr logs an error message with its cause attached.
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with its cause attached.
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// IsLevelEnabled reports whether a level would be written.
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := newEntry(level, message)
	entry.Logger = l.name
	entry.RunID = l.runID
	entry.Error = err
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	formatted, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}

	l.mu.Lock()
	l.output.Write(formatted)
	l.mu.Unlock()
}

func (l *Logger) clone() *Logger {
	clone := &Logger{
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		name:      l.name,
		runID:     l.runID,
		fields:    make(Fields, len(l.fields)),
	}
	for k, v := range l.fields {
		clone.fields[k] = v
	}
	return clone
}

var std = New()

// Default returns the shared package-level logger.
func Default() *Logger {
	return std
}

// SetDefault replaces the shared package-level logger.
func SetDefault(l *Logger) {
	if l != nil {
		std = l
	}
}

// Nop returns a logger that discards everything; used in tests and as a
// fallback when a caller passes nil.
func Nop() *Logger {
	return &Logger{
		level:     LevelFatal,
		formatter: &TextFormatter{DisableTimestamp: true},
		output:    io.Discard,
		fields:    make(Fields),
	}
}
