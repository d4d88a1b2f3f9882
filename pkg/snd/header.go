package snd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/geosnd/pkg/codes"
)

// headerInfo carries the decoded header fields of one block. Nil fields
// mark sub-parses that failed; the three sub-parses (method code, date,
// stop code) are independently fault-tolerant.
type headerInfo struct {
	methodCode *int
	methodName *string
	day        *int
	month      *int
	year       *int
	date       *string
	stopCode   *int
	stopReason *string
}

// decodeHeader parses the two header lines following an accepted marker:
// marker+1 holds "<method code> <dd.mm.yyyy>", marker+2 holds the block
// sentinel and the stop code. Unrecognized codes resolve to synthesized
// fallback names; nothing here aborts the block.
func (p *Parser) decodeHeader(lines []string, marker, block int, sink *diagSink) headerInfo {
	var h headerInfo

	var fields0 []string
	if marker+1 < len(lines) {
		fields0 = strings.Fields(lines[marker+1])
	}

	// Method code.
	if len(fields0) > 0 {
		if code, err := strconv.Atoi(fields0[0]); err == nil {
			h.methodCode = intPtr(code)
			if m, ok := p.tables.Method(code); ok {
				h.methodName = strPtr(m.Name)
			} else {
				h.methodName = strPtr(codes.FallbackMethodName(code))
				sink.info(DiagMethodCode, block, "method_name", "method code %d not recognized", code)
			}
		} else {
			sink.info(DiagMethodCode, block, "method_code", "method code not valid: %q", fields0[0])
		}
	} else {
		sink.info(DiagMethodCode, block, "method_code", "method code missing")
	}

	// Date, written dd.mm.yyyy in the file.
	if day, month, year, err := parseHeaderDate(fields0); err == nil {
		h.day, h.month, h.year = intPtr(day), intPtr(month), intPtr(year)
		h.date = strPtr(fmt.Sprintf("%d-%d-%d", year, month, day))
	} else {
		sink.info(DiagDate, block, "date", "no date")
	}

	// Stop code, second token of the sentinel line.
	var fields2 []string
	if marker+2 < len(lines) {
		fields2 = strings.Fields(lines[marker+2])
	}
	if len(fields2) > 1 {
		if code, err := strconv.Atoi(fields2[1]); err == nil {
			h.stopCode = intPtr(code)
			if s, ok := p.tables.StopReason(code); ok {
				h.stopReason = strPtr(s.Name)
			} else {
				h.stopReason = strPtr(codes.FallbackStopName(code))
				sink.info(DiagStopCode, block, "stop_desc", "stop code %d not recognized", code)
			}
		} else {
			sink.info(DiagStopCode, block, "stop_code", "stop code not valid: %q", fields2[1])
		}
	} else {
		sink.info(DiagStopCode, block, "stop_code", "stop code missing")
	}

	return h
}

// parseHeaderDate splits the second header token on dots into day,
// month, year.
func parseHeaderDate(fields []string) (day, month, year int, err error) {
	if len(fields) < 2 {
		return 0, 0, 0, fmt.Errorf("no date token")
	}
	parts := strings.Split(fields[1], ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date %q: want dd.mm.yyyy", fields[1])
	}
	if day, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, err
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, err
	}
	if year, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, err
	}
	return day, month, year, nil
}
