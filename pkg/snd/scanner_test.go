package snd

import (
	"errors"
	"reflect"
	"testing"
)

func TestScanStructureCoordinateOrder(t *testing.T) {
	// The first three lines are y, x, z - in that order.
	lines := []string{"10.5", "20.25", "3.0"}

	st, err := scanStructure(lines)
	if err != nil {
		t.Fatalf("scanStructure() error = %v", err)
	}
	if st.y != 10.5 {
		t.Errorf("y = %v, want 10.5", st.y)
	}
	if st.x != 20.25 {
		t.Errorf("x = %v, want 20.25", st.x)
	}
	if st.z != 3.0 {
		t.Errorf("z = %v, want 3.0", st.z)
	}
}

func TestScanStructureMarkers(t *testing.T) {
	lines := []string{
		"1.0", "2.0", "3.0",
		"*",
		"25 24.01.2020",
		"1 94",
		"0.0 12.5",
		"*",
		"header",
		"*",
		"*",
	}

	st, err := scanStructure(lines)
	if err != nil {
		t.Fatalf("scanStructure() error = %v", err)
	}
	want := []int{3, 7, 9, 10}
	if !reflect.DeepEqual(st.markers, want) {
		t.Errorf("markers = %v, want %v", st.markers, want)
	}
}

func TestScanStructureMalformedCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"non-numeric first line", []string{"abc", "2.0", "3.0", "*"}},
		{"non-numeric third line", []string{"1.0", "2.0", "bottom", "*"}},
		{"empty line", []string{"1.0", "", "3.0"}},
		{"too few lines", []string{"1.0", "2.0"}},
		{"empty file", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanStructure(tt.lines)
			if !errors.Is(err, ErrMalformedCoordinates) {
				t.Errorf("scanStructure() error = %v, want ErrMalformedCoordinates", err)
			}
		})
	}
}

func TestScanStructureNoMarkers(t *testing.T) {
	st, err := scanStructure([]string{"1.0", "2.0", "3.0", "no markers here"})
	if err != nil {
		t.Fatalf("scanStructure() error = %v", err)
	}
	if len(st.markers) != 0 {
		t.Errorf("markers = %v, want none", st.markers)
	}
}

func TestScanStructureStarWithTextIsNotMarker(t *testing.T) {
	// Only lines that are exactly "*" separate segments.
	st, err := scanStructure([]string{"1.0", "2.0", "3.0", "* note", "**", "*"})
	if err != nil {
		t.Fatalf("scanStructure() error = %v", err)
	}
	want := []int{5}
	if !reflect.DeepEqual(st.markers, want) {
		t.Errorf("markers = %v, want %v", st.markers, want)
	}
}
