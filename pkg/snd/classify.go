package snd

import (
	"strconv"
	"strings"
)

// sentinelTolerance absorbs floating-point noise in the block sentinel,
// accepting values like "1.0000001".
const sentinelTolerance = 1e-4

// acceptBlock decides whether the segment following a marker is a data
// block: the first token of the line two positions after the marker must
// be (approximately) 1. Files interleave non-data annotation blocks
// between data blocks, distinguishable only by this sentinel, so any
// failure here - missing line, empty line, non-numeric token - is a
// routine reject, not an error.
//
// The tolerance check is deliberately one-sided (value-1 < 1e-4), which
// also accepts values far below 1. That matches the behavior observed in
// production data pipelines consuming these files; see the regression
// test before tightening it.
func acceptBlock(lines []string, marker int) bool {
	idx := marker + 2
	if idx < 0 || idx >= len(lines) {
		return false
	}
	fields := strings.Fields(lines[idx])
	if len(fields) == 0 {
		return false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return false
	}
	return v-1 < sentinelTolerance
}
