package snd

import "testing"

func TestAcceptBlock(t *testing.T) {
	tests := []struct {
		name string
		line string // content of marker+2
		want bool
	}{
		{"exact one", "1 94", true},
		{"bare one", "1", true},
		{"float noise above", "1.0000001 94", true},
		{"float noise below", "0.9999 94", true},
		{"two", "2 94", false},
		{"large value", "1000", false},
		{"non-numeric", "kote 94", false},
		{"empty line", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []string{"*", "25 24.01.2020", tt.line}
			if got := acceptBlock(lines, 0); got != tt.want {
				t.Errorf("acceptBlock(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

// The sentinel tolerance is one-sided: any value below 1 passes,
// including absurd ones. Production files have been consumed with this
// behavior for years; this test pins it so nobody tightens the check
// without deciding to.
func TestAcceptBlockOneSidedTolerance(t *testing.T) {
	lines := []string{"*", "header", "-1000 94"}
	if !acceptBlock(lines, 0) {
		t.Error("acceptBlock(-1000) = false, want true (one-sided tolerance)")
	}
}

func TestAcceptBlockMissingLine(t *testing.T) {
	lines := []string{"1.0", "2.0", "3.0", "*"}
	// Marker at index 3; index 5 is past the end of the file.
	if acceptBlock(lines, 3) {
		t.Error("acceptBlock() = true for marker without a sentinel line, want false")
	}
}
