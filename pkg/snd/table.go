package snd

import "encoding/json"

// Table is a column-oriented table of per-depth samples. Numeric columns
// keep their insertion order: the method's named layout first, then any
// synthesized extras, then flag columns. The comments column, when
// present, holds the residual tail text per row.
type Table struct {
	names    []string
	numeric  map[string][]float64
	comments []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{numeric: make(map[string][]float64)}
}

// AddColumn appends a numeric column. Re-adding an existing name
// replaces its values without disturbing column order.
func (t *Table) AddColumn(name string, values []float64) {
	if _, exists := t.numeric[name]; !exists {
		t.names = append(t.names, name)
	}
	t.numeric[name] = values
}

// Column returns a numeric column by name.
func (t *Table) Column(name string) ([]float64, bool) {
	v, ok := t.numeric[name]
	return v, ok
}

// ColumnNames returns the numeric column names in insertion order.
func (t *Table) ColumnNames() []string {
	return t.names
}

// SetComments attaches the comments column.
func (t *Table) SetComments(comments []string) {
	t.comments = comments
}

// Comments returns the comments column, or nil when none was produced.
func (t *Table) Comments() []string {
	return t.comments
}

// Len returns the row count.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.numeric[t.names[0]])
}

// IsEmpty reports whether the table holds no data at all.
func (t *Table) IsEmpty() bool {
	return len(t.names) == 0
}

// MarshalJSON renders the table column-wise, preserving column order via
// a separate "columns" list since JSON objects do not order keys.
func (t *Table) MarshalJSON() ([]byte, error) {
	cols := make(map[string]interface{}, len(t.names)+1)
	for _, name := range t.names {
		cols[name] = t.numeric[name]
	}
	if t.comments != nil {
		cols["comments"] = t.comments
	}
	names := t.names
	if t.comments != nil {
		names = append(append([]string{}, t.names...), "comments")
	}
	return json.Marshal(struct {
		Columns []string               `json:"columns"`
		Values  map[string]interface{} `json:"values"`
	}{Columns: names, Values: cols})
}
