package snd

import (
	"math"
	"strings"

	"github.com/msto63/geosnd/pkg/codes"
)

// The flag state machine turns per-row tail tokens into forward-filled
// flag columns. It runs in two phases: phase one walks the rows in file
// order, updating a persistent per-flag state from toggle tokens and
// writing the current snapshot into each row; phase two replaces the
// "never toggled" sentinel with 0. NaN is the sentinel - it cannot
// collide with a real toggle value and distinguishes "never appeared"
// from "explicitly cleared to 0" until the final sweep.

// flagUpdate is one state change extracted from a row's tail.
type flagUpdate struct {
	flag  string
	value float64
}

// scanTail matches a row's tail tokens against the flag table. It
// returns the flag updates in token order (a token may yield several,
// last write per flag wins), the unmatched residue in original order,
// and whether the row marks a bedrock hit. Pure function: the input
// slice is never modified.
func scanTail(tokens []string, tables *codes.Tables) (updates []flagUpdate, residual []string, bedrock bool) {
	for _, tok := range tokens {
		entries := tables.FlagTokens(tok)
		if len(entries) == 0 {
			residual = append(residual, tok)
			continue
		}
		for _, e := range entries {
			if e.Bedrock {
				bedrock = true
			}
			if e.Flag != "" {
				updates = append(updates, flagUpdate{flag: e.Flag, value: e.Value})
			}
		}
	}
	return updates, residual, bedrock
}

// applyFlags augments a decoded block table with flag columns and a
// comments column, returning the depth of the first bedrock hit, if any.
// Columns named in the method's declared flag set exist even when no
// token ever toggles them; flags discovered ad hoc in the tail get their
// columns on first occurrence. State is local to one block.
func (p *Parser) applyFlags(table *Table, tails [][]string, method codes.Method) *float64 {
	nrows := table.Len()
	if nrows == 0 {
		return nil
	}

	unset := math.NaN()
	flagCols := make(map[string][]float64, len(method.Flags))
	var order []string
	declare := func(flag string) []float64 {
		col, ok := flagCols[flag]
		if !ok {
			col = make([]float64, nrows)
			for i := range col {
				col[i] = unset
			}
			flagCols[flag] = col
			order = append(order, flag)
		}
		return col
	}
	for _, f := range method.Flags {
		declare(f)
	}

	depths, hasDepth := table.Column("depth")
	current := make(map[string]float64)
	comments := make([]string, nrows)
	var bedrockDepth *float64

	for i := 0; i < nrows && i < len(tails); i++ {
		updates, residual, bedrock := scanTail(tails[i], p.tables)
		for _, u := range updates {
			declare(u.flag)
			current[u.flag] = u.value
		}
		if bedrock && bedrockDepth == nil && hasDepth {
			bedrockDepth = floatPtr(depths[i])
		}

		// Snapshot the state after this row's toggles: forward fill
		// realized incrementally.
		for flag, value := range current {
			flagCols[flag][i] = value
		}
		comments[i] = strings.Join(residual, " ")
	}

	// Phase two: flags never toggled in this block default to off.
	for _, col := range flagCols {
		for i, v := range col {
			if math.IsNaN(v) {
				col[i] = 0
			}
		}
	}

	for _, flag := range order {
		table.AddColumn(flag, flagCols[flag])
	}
	table.SetComments(comments)
	return bedrockDepth
}
