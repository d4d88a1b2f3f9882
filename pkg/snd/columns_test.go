package snd

import (
	"reflect"
	"testing"
)

// decodeTestColumns runs the column decoder over data rows for a method
// code, with the rows framed by markers the way ParseLines frames them.
func decodeTestColumns(t *testing.T, methodCode int, rows []string) (columnResult, []Diagnostic) {
	t.Helper()
	lines := append([]string{"*", "hdr", "hdr"}, rows...)
	lines = append(lines, "*")
	p := NewParser(nil, nil)
	sink := &diagSink{log: p.log}
	res := p.decodeColumns(lines, intPtr(methodCode), 3, len(lines)-1, 0, sink)
	return res, sink.diags
}

func TestDecodeColumnsNamedLayout(t *testing.T) {
	res, diags := decodeTestColumns(t, 25, []string{
		"0.0 12.5 25 0",
		"0.2 13.0 25 0",
		"0.4 13.5 25 0",
	})

	if !res.ok {
		t.Fatalf("decode failed: %v", diags)
	}
	want := []string{"depth", "feed_trust_force", "interval", "pumping_rate"}
	if !reflect.DeepEqual(res.table.ColumnNames(), want) {
		t.Errorf("columns = %v, want %v", res.table.ColumnNames(), want)
	}
	depths, _ := res.table.Column("depth")
	if !reflect.DeepEqual(depths, []float64{0.0, 0.2, 0.4}) {
		t.Errorf("depth = %v", depths)
	}
	if res.depthIncrement == nil || *res.depthIncrement != 0.2 {
		t.Errorf("depthIncrement = %v, want 0.2", res.depthIncrement)
	}
}

func TestDecodeColumnsSynthesizedNames(t *testing.T) {
	// Method 23 (rps) names two columns; a third numeric column gets a
	// synthesized name.
	res, _ := decodeTestColumns(t, 23, []string{
		"0.0 12.5 7.1",
		"0.2 13.0 7.2",
	})

	if !res.ok {
		t.Fatal("decode failed")
	}
	want := []string{"depth", "feed_trust_force", "rps_Col2"}
	if !reflect.DeepEqual(res.table.ColumnNames(), want) {
		t.Errorf("columns = %v, want %v", res.table.ColumnNames(), want)
	}
}

func TestDecodeColumnsMinWidthAcrossRows(t *testing.T) {
	// The block width is the minimum token count: the first row's extra
	// tokens are tail tokens, not numeric columns.
	res, _ := decodeTestColumns(t, 23, []string{
		"0.0 12.5 S1 note",
		"0.2 13.0",
	})

	if !res.ok {
		t.Fatal("decode failed")
	}
	if got := res.table.ColumnNames(); len(got) != 2 {
		t.Errorf("columns = %v, want 2 numeric columns", got)
	}
	if !reflect.DeepEqual(res.tails[0], []string{"S1", "note"}) {
		t.Errorf("tails[0] = %v, want [S1 note]", res.tails[0])
	}
	if len(res.tails[1]) != 0 {
		t.Errorf("tails[1] = %v, want empty", res.tails[1])
	}
}

func TestDecodeColumnsSingleRow(t *testing.T) {
	res, _ := decodeTestColumns(t, 23, []string{"0.0 12.5"})

	if !res.ok {
		t.Fatal("decode failed")
	}
	if res.depthIncrement != nil {
		t.Errorf("depthIncrement = %v, want nil for a single row", *res.depthIncrement)
	}
	if res.table.Len() != 1 {
		t.Errorf("rows = %d, want 1", res.table.Len())
	}
}

func TestDecodeColumnsFailures(t *testing.T) {
	tests := []struct {
		name   string
		method int
		rows   []string
	}{
		{"method without layout", 21, []string{"0.0 12.5"}},
		{"unknown method", 99, []string{"0.0 12.5"}},
		{"non-numeric cell", 23, []string{"0.0 12.5", "0.2 abc"}},
		{"no rows", 23, nil},
		{"blank row", 23, []string{"0.0 12.5", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, diags := decodeTestColumns(t, tt.method, tt.rows)
			if res.ok {
				t.Fatal("decode ok, want failure")
			}
			if !res.table.IsEmpty() {
				t.Error("table not empty after failed decode")
			}
			if len(diags) != 1 || diags[0].Code != DiagColumnDecode {
				t.Errorf("diagnostics = %v, want one COLUMN_DECODE", diags)
			}
		})
	}
}

func TestDecodeColumnsNilMethodCode(t *testing.T) {
	p := NewParser(nil, nil)
	sink := &diagSink{log: p.log}
	res := p.decodeColumns([]string{"*", "h", "h", "0.0 1.0", "*"}, nil, 3, 4, 0, sink)
	if res.ok {
		t.Fatal("decode ok, want failure for nil method code")
	}
}

func TestDecodeColumnsNoClosingMarker(t *testing.T) {
	p := NewParser(nil, nil)
	sink := &diagSink{log: p.log}
	// end < 0 marks a block with no following marker.
	res := p.decodeColumns([]string{"*", "h", "h", "0.0 1.0"}, intPtr(23), 3, -1, 0, sink)
	if res.ok {
		t.Fatal("decode ok, want failure without closing marker")
	}
}
