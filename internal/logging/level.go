package logging

import "strings"

// Level represents the importance of a log message.
type Level int

const (
	// LevelTrace is the most verbose level, for development only.
	LevelTrace Level = iota

	// LevelDebug provides detail useful when debugging a parse.
	LevelDebug

	// LevelInfo is the standard level for normal operation, including
	// per-field decode diagnostics.
	LevelInfo

	// LevelWarn indicates a problem that degraded a result (empty block,
	// missing markers) without stopping the run.
	LevelWarn

	// LevelError indicates an operation that failed outright.
	LevelError

	// LevelFatal indicates the program cannot continue.
	LevelFatal
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns the three-letter tag used by the text formatter.
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// Color returns the ANSI color code for console output.
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return "\033[37m"
	case LevelDebug:
		return "\033[36m"
	case LevelInfo:
		return "\033[32m"
	case LevelWarn:
		return "\033[33m"
	case LevelError:
		return "\033[31m"
	case LevelFatal:
		return "\033[35m"
	default:
		return "\033[0m"
	}
}

// ShouldLog reports whether a message at this level passes the minimum.
func (l Level) ShouldLog(min Level) bool {
	return l >= min
}

// ParseLevel parses a level name, accepting long and short forms.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	default:
		return LevelInfo, &ParseError{Input: s, Type: "level"}
	}
}

// ParseError reports an unparsable logging configuration value.
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is the level used when none is configured.
func DefaultLevel() Level {
	return LevelInfo
}
