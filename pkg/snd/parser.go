package snd

import (
	"fmt"
	"io"
	"os"

	"github.com/msto63/geosnd/internal/logging"
	"github.com/msto63/geosnd/pkg/codes"
)

// Parser parses SND files against one immutable set of code tables.
// A Parser is stateless across invocations and safe for concurrent use;
// parsing itself is strictly sequential within a file.
type Parser struct {
	tables *codes.Tables
	log    *logging.Logger
}

// NewParser creates a Parser. A nil tables falls back to the built-in
// GeoSuite defaults, a nil logger discards diagnostics logging (the
// diagnostics themselves are always returned on the ParseResult).
func NewParser(tables *codes.Tables, log *logging.Logger) *Parser {
	if tables == nil {
		tables = codes.Default()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Parser{tables: tables, log: log}
}

// ParseFile opens and parses one SND file. The borehole ID is derived
// from the base filename before the first dot.
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snd file: %w", err)
	}
	defer f.Close()
	return p.Parse(f, BoreholeIDFromPath(path))
}

// Parse reads and parses one SND file from r. An error is returned only
// for failed reads or the fatal coordinate failure; all other problems
// degrade to diagnostics on the result.
func (p *Parser) Parse(r io.Reader, boreholeID string) (*ParseResult, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return p.ParseLines(lines, boreholeID)
}

// ParseLines parses an already decoded, trimmed line sequence. This is
// the core entry point the other Parse variants funnel into.
func (p *Parser) ParseLines(lines []string, boreholeID string) (*ParseResult, error) {
	result := &ParseResult{BoreholeID: boreholeID}
	sink := &diagSink{log: p.log.WithField("borehole", boreholeID)}

	st, err := scanStructure(lines)
	if err != nil {
		sink.fatal(DiagCoordinates, "%v", err)
		result.Diagnostics = sink.diags
		return result, err
	}

	if n := len(st.markers); n != wellFormedMarkerCount {
		if n < wellFormedMarkerCount {
			sink.warn(DiagMarkerCount, -1, "%d marker lines in file, want %d; file may be truncated", n, wellFormedMarkerCount)
		} else {
			sink.warn(DiagMarkerCount, -1, "%d marker lines in file, want %d", n, wellFormedMarkerCount)
		}
	}

	for idx, marker := range st.markers {
		// Rejected blocks are routine non-data segments, skipped silently.
		if !acceptBlock(lines, marker) {
			continue
		}

		header := p.decodeHeader(lines, marker, idx, sink)

		end := -1
		if idx+1 < len(st.markers) {
			end = st.markers[idx+1]
		}
		cols := p.decodeColumns(lines, header.methodCode, marker+3, end, idx, sink)

		var bedrockDepth *float64
		if cols.ok && header.methodCode != nil {
			if method, ok := p.tables.Method(*header.methodCode); ok && len(method.Flags) > 0 {
				bedrockDepth = p.applyFlags(cols.table, cols.tails, method)
			}
		}

		result.Records = append(result.Records, SoundingRecord{
			Metadata: Metadata{
				BoreholeID:     boreholeID,
				MethodCode:     header.methodCode,
				MethodName:     header.methodName,
				Day:            header.day,
				Month:          header.month,
				Year:           header.year,
				Date:           header.date,
				StopCode:       header.stopCode,
				StopReason:     header.stopReason,
				DepthIncrement: cols.depthIncrement,
				DepthBedrock:   bedrockDepth,
				X:              st.x,
				Y:              st.y,
				Z:              st.z,
			},
			Data: cols.table,
		})
	}

	result.Diagnostics = sink.diags
	return result, nil
}
