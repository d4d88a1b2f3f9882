package snd

import (
	"fmt"
	"strconv"
	"strings"
)

// columnResult is the Column Decoder output for one block. ok is false
// when the whole block's decode failed; the table is then empty but
// never nil, so the Record Assembler can always attach it.
type columnResult struct {
	table          *Table
	tails          [][]string
	depthIncrement *float64
	ok             bool
}

// decodeColumns parses the data rows of one block, lines[start:end),
// into named numeric columns per the method's layout. The numeric width
// of the block is the minimum token count across its rows: rows may
// carry extra trailing flag tokens but never fewer leading numeric
// tokens. Columns beyond the named layout get synthesized names. Any
// failure - unknown layout, missing rows, unparsable numeric - fails the
// whole block with a diagnostic and leaves the table empty.
func (p *Parser) decodeColumns(lines []string, methodCode *int, start, end, block int, sink *diagSink) columnResult {
	res := columnResult{table: NewTable()}

	fail := func(format string, args ...interface{}) columnResult {
		sink.warn(DiagColumnDecode, block, "no data extracted: "+fmt.Sprintf(format, args...))
		return res
	}

	if methodCode == nil {
		return fail("method code unknown, no column layout")
	}
	method, known := p.tables.Method(*methodCode)
	if !known || len(method.Columns) == 0 {
		return fail("no column layout for method code %d", *methodCode)
	}

	if end < 0 || end > len(lines) {
		return fail("data block has no closing marker")
	}
	if start >= end {
		return fail("block has no data rows")
	}

	rows := make([][]string, 0, end-start)
	width := -1
	for _, line := range lines[start:end] {
		tokens := strings.Fields(line)
		rows = append(rows, tokens)
		if width < 0 || len(tokens) < width {
			width = len(tokens)
		}
	}
	if width == 0 {
		return fail("empty data row in block")
	}

	columns := make([][]float64, width)
	for c := range columns {
		columns[c] = make([]float64, len(rows))
	}
	for r, tokens := range rows {
		for c := 0; c < width; c++ {
			v, err := strconv.ParseFloat(tokens[c], 64)
			if err != nil {
				return fail("row %d column %d: %q is not a number", r, c, tokens[c])
			}
			columns[c][r] = v
		}
	}

	for c := 0; c < width; c++ {
		res.table.AddColumn(columnName(method.Name, method.Columns, c), columns[c])
	}

	// First-sample depth increment; needs at least two rows.
	if depths, ok := res.table.Column("depth"); ok && len(depths) >= 2 {
		res.depthIncrement = floatPtr(depths[1] - depths[0])
	}

	res.tails = make([][]string, len(rows))
	for r, tokens := range rows {
		res.tails[r] = tokens[width:]
	}

	res.ok = true
	return res
}

// columnName resolves position i of a method's layout, synthesizing
// "<method>_Col<i>" past the end of the named list.
func columnName(methodName string, layout []string, i int) string {
	if i < len(layout) {
		return layout[i]
	}
	return fmt.Sprintf("%s_Col%d", methodName, i)
}
