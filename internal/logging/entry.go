package logging

import "time"

// Entry is one log message with its metadata.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// RunID identifies one parse invocation across all its entries.
	RunID string

	Fields Fields
	Error  error
}

// Fields holds custom key-value pairs attached to an entry.
type Fields map[string]interface{}

// Merge combines two field sets; values in other win.
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Clone copies the field set.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// newEntry creates an entry stamped with the current time.
func newEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
