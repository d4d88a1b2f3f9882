package snd

import (
	"errors"
	"fmt"
	"strconv"
)

// markerLine is the delimiter convention: a line whose entire trimmed
// content is a single asterisk separates file segments.
const markerLine = "*"

// wellFormedMarkerCount is how many marker lines a complete SND file has.
const wellFormedMarkerCount = 4

// ErrMalformedCoordinates reports that one of the first three lines is
// not a valid coordinate. Coordinates are structurally mandatory, so
// this is the one content failure that aborts a whole file.
var ErrMalformedCoordinates = errors.New("malformed coordinates")

// structure is the Structural Scanner output: the file-global coordinate
// triple and the positions of all marker lines.
type structure struct {
	x, y, z float64
	markers []int
}

// scanStructure extracts coordinates from the first three lines and
// locates every marker line in a single pass. The first three lines are
// ordered y, x, z — a quirk of the format that must be preserved.
func scanStructure(lines []string) (structure, error) {
	var st structure
	if len(lines) < 3 {
		return st, fmt.Errorf("%w: file has %d lines, want at least 3", ErrMalformedCoordinates, len(lines))
	}

	coords := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(lines[i], 64)
		if err != nil {
			return st, fmt.Errorf("%w: line %d %q is not a number", ErrMalformedCoordinates, i+1, lines[i])
		}
		coords[i] = v
	}
	st.y, st.x, st.z = coords[0], coords[1], coords[2]

	for i, line := range lines {
		if line == markerLine {
			st.markers = append(st.markers, i)
		}
	}
	return st, nil
}
