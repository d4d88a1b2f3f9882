package snd

import "testing"

// headerLines builds a minimal block: marker at index 0, header lines
// behind it.
func headerLines(methodLine, sentinelLine string) []string {
	return []string{"*", methodLine, sentinelLine}
}

func decodeTestHeader(t *testing.T, lines []string) (headerInfo, []Diagnostic) {
	t.Helper()
	p := NewParser(nil, nil)
	sink := &diagSink{log: p.log}
	h := p.decodeHeader(lines, 0, 0, sink)
	return h, sink.diags
}

func TestDecodeHeaderComplete(t *testing.T) {
	h, diags := decodeTestHeader(t, headerLines("25 24.01.2020", "1 94"))

	if h.methodCode == nil || *h.methodCode != 25 {
		t.Errorf("methodCode = %v, want 25", h.methodCode)
	}
	if h.methodName == nil || *h.methodName != "total" {
		t.Errorf("methodName = %v, want total", h.methodName)
	}
	if h.day == nil || *h.day != 24 || h.month == nil || *h.month != 1 || h.year == nil || *h.year != 2020 {
		t.Errorf("date parts = %v.%v.%v, want 24.1.2020", h.day, h.month, h.year)
	}
	if h.date == nil || *h.date != "2020-1-24" {
		t.Errorf("date = %v, want 2020-1-24 (no zero padding)", h.date)
	}
	if h.stopCode == nil || *h.stopCode != 94 {
		t.Errorf("stopCode = %v, want 94", h.stopCode)
	}
	if h.stopReason == nil || *h.stopReason != "reached_bedrock" {
		t.Errorf("stopReason = %v, want reached_bedrock", h.stopReason)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
}

func TestDecodeHeaderUnknownMethodCode(t *testing.T) {
	h, diags := decodeTestHeader(t, headerLines("99 24.01.2020", "1 94"))

	if h.methodCode == nil || *h.methodCode != 99 {
		t.Fatalf("methodCode = %v, want 99", h.methodCode)
	}
	if h.methodName == nil || *h.methodName != "method_99" {
		t.Errorf("methodName = %v, want fallback method_99", h.methodName)
	}
	if len(diags) != 1 || diags[0].Code != DiagMethodCode {
		t.Errorf("diagnostics = %v, want one METHOD_CODE", diags)
	}
}

func TestDecodeHeaderInvalidMethodCode(t *testing.T) {
	h, _ := decodeTestHeader(t, headerLines("xx 24.01.2020", "1 94"))

	if h.methodCode != nil {
		t.Errorf("methodCode = %v, want nil", *h.methodCode)
	}
	if h.methodName != nil {
		t.Errorf("methodName = %v, want nil for unparsable code", *h.methodName)
	}
	// Date and stop code still decode: sub-parses are independent.
	if h.date == nil {
		t.Error("date = nil, want parsed despite bad method code")
	}
	if h.stopCode == nil || *h.stopCode != 94 {
		t.Errorf("stopCode = %v, want 94", h.stopCode)
	}
}

func TestDecodeHeaderBadDate(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing", "25"},
		{"two components", "25 24.2020"},
		{"non-numeric", "25 aa.bb.cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := decodeTestHeader(t, headerLines(tt.line, "1 94"))
			if h.day != nil || h.month != nil || h.year != nil || h.date != nil {
				t.Errorf("date fields = %v/%v/%v/%v, want all nil", h.day, h.month, h.year, h.date)
			}
			if h.methodCode == nil || *h.methodCode != 25 {
				t.Errorf("methodCode = %v, want 25 despite bad date", h.methodCode)
			}
		})
	}
}

func TestDecodeHeaderStopCode(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantCode   *int
		wantReason *string
	}{
		{"known", "1 90", intPtr(90), strPtr("drilling_abandoned_prematurely")},
		{"unknown", "1 42", intPtr(42), strPtr("stop_42")},
		{"missing", "1", nil, nil},
		{"non-numeric", "1 xx", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := decodeTestHeader(t, headerLines("25 24.01.2020", tt.line))
			switch {
			case tt.wantCode == nil:
				if h.stopCode != nil {
					t.Errorf("stopCode = %v, want nil", *h.stopCode)
				}
				if h.stopReason != nil {
					t.Errorf("stopReason = %v, want nil", *h.stopReason)
				}
			default:
				if h.stopCode == nil || *h.stopCode != *tt.wantCode {
					t.Errorf("stopCode = %v, want %d", h.stopCode, *tt.wantCode)
				}
				if h.stopReason == nil || *h.stopReason != *tt.wantReason {
					t.Errorf("stopReason = %v, want %s", h.stopReason, *tt.wantReason)
				}
			}
		})
	}
}
