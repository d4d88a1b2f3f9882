package snd

import (
	"fmt"

	"github.com/msto63/geosnd/internal/logging"
)

// Severity classifies how far a diagnostic degraded the parse result.
type Severity int

const (
	// SeverityInfo marks a field-local failure: one metadata field is
	// null, the record is otherwise intact.
	SeverityInfo Severity = iota

	// SeverityWarning marks a block- or file-shape anomaly: an empty
	// data table or a suspicious marker count.
	SeverityWarning

	// SeverityFatal marks the structural failure that aborts a file.
	SeverityFatal
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// DiagCode identifies the kind of decode problem a diagnostic reports.
type DiagCode string

const (
	DiagCoordinates  DiagCode = "MALFORMED_COORDINATES"
	DiagMarkerCount  DiagCode = "MARKER_COUNT"
	DiagMethodCode   DiagCode = "METHOD_CODE"
	DiagDate         DiagCode = "DATE"
	DiagStopCode     DiagCode = "STOP_CODE"
	DiagColumnDecode DiagCode = "COLUMN_DECODE"
)

// Diagnostic reports one recoverable decode problem, located as narrowly
// as possible: Block is the marker index the problem belongs to, or -1
// for file-level problems; Field names the affected metadata field for
// field-local failures.
type Diagnostic struct {
	Severity Severity
	Code     DiagCode
	Block    int
	Field    string
	Message  string
}

// String renders the diagnostic for human consumption.
func (d Diagnostic) String() string {
	loc := "file"
	if d.Block >= 0 {
		loc = fmt.Sprintf("block %d", d.Block)
	}
	if d.Field != "" {
		loc += "." + d.Field
	}
	return fmt.Sprintf("[%s] %s (%s): %s", d.Severity, d.Code, loc, d.Message)
}

// diagSink collects diagnostics for a ParseResult and mirrors each one
// onto the logger at the matching level.
type diagSink struct {
	log   *logging.Logger
	diags []Diagnostic
}

func (s *diagSink) add(d Diagnostic) {
	s.diags = append(s.diags, d)

	fields := logging.Fields{"code": string(d.Code)}
	if d.Block >= 0 {
		fields["block"] = d.Block
	}
	if d.Field != "" {
		fields["field"] = d.Field
	}
	switch d.Severity {
	case SeverityFatal:
		s.log.Error(d.Message, fields)
	case SeverityWarning:
		s.log.Warn(d.Message, fields)
	default:
		s.log.Info(d.Message, fields)
	}
}

func (s *diagSink) info(code DiagCode, block int, field, format string, args ...interface{}) {
	s.add(Diagnostic{Severity: SeverityInfo, Code: code, Block: block, Field: field, Message: fmt.Sprintf(format, args...)})
}

func (s *diagSink) warn(code DiagCode, block int, format string, args ...interface{}) {
	s.add(Diagnostic{Severity: SeverityWarning, Code: code, Block: block, Message: fmt.Sprintf(format, args...)})
}

func (s *diagSink) fatal(code DiagCode, format string, args ...interface{}) {
	s.add(Diagnostic{Severity: SeverityFatal, Code: code, Block: -1, Message: fmt.Sprintf(format, args...)})
}
