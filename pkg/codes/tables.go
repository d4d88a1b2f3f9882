package codes

import (
	"fmt"
	"sort"
)

// Method describes one sounding method: its numeric code in SND headers,
// a short name, the ordered column layout of its data rows, and the set
// of condition flags its data-row tails may toggle. Columns and Flags may
// be empty; a method without a column layout cannot have its data blocks
// decoded.
type Method struct {
	Code    int
	Name    string
	Columns []string
	Flags   []string
}

// StopReason describes one drilling stop code.
type StopReason struct {
	Code int
	Name string
}

// FlagToken maps one tail token to a flag update. Toggle tokens come in
// pairs (set/clear) that share a Flag name with values 1 and 0. A token
// may map to several FlagToken entries when it updates more than one flag
// at once. Bedrock tokens mark the bedrock hit and carry no flag column
// (Flag is empty).
type FlagToken struct {
	Token   string
	Flag    string
	Value   float64
	Bedrock bool
}

// Tables is the immutable set of lookup tables one parse runs against.
// Construct with New, Default, or LoadDir; never mutate after that.
type Tables struct {
	methods     map[int]Method
	stopReasons map[int]StopReason
	flagTokens  map[string][]FlagToken
}

// New builds a Tables from explicit slices. Later duplicates of a method
// or stop code win; flag tokens accumulate per token.
func New(methods []Method, stops []StopReason, tokens []FlagToken) *Tables {
	t := &Tables{
		methods:     make(map[int]Method, len(methods)),
		stopReasons: make(map[int]StopReason, len(stops)),
		flagTokens:  make(map[string][]FlagToken, len(tokens)),
	}
	for _, m := range methods {
		t.methods[m.Code] = m
	}
	for _, s := range stops {
		t.stopReasons[s.Code] = s
	}
	for _, ft := range tokens {
		t.flagTokens[ft.Token] = append(t.flagTokens[ft.Token], ft)
	}
	return t
}

// Method looks up a sounding method by code.
func (t *Tables) Method(code int) (Method, bool) {
	m, ok := t.methods[code]
	return m, ok
}

// StopReason looks up a stop reason by code.
func (t *Tables) StopReason(code int) (StopReason, bool) {
	s, ok := t.stopReasons[code]
	return s, ok
}

// FlagTokens returns all flag updates a tail token triggers, or nil when
// the token is not a control token.
func (t *Tables) FlagTokens(token string) []FlagToken {
	return t.flagTokens[token]
}

// Methods returns all methods sorted by code.
func (t *Tables) Methods() []Method {
	out := make([]Method, 0, len(t.methods))
	for _, m := range t.methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// StopReasons returns all stop reasons sorted by code.
func (t *Tables) StopReasons() []StopReason {
	out := make([]StopReason, 0, len(t.stopReasons))
	for _, s := range t.stopReasons {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// AllFlagTokens returns every flag token entry sorted by token then flag.
func (t *Tables) AllFlagTokens() []FlagToken {
	out := make([]FlagToken, 0, len(t.flagTokens))
	for _, fts := range t.flagTokens {
		out = append(out, fts...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Token != out[j].Token {
			return out[i].Token < out[j].Token
		}
		return out[i].Flag < out[j].Flag
	})
	return out
}

// FallbackMethodName synthesizes a display name for a method code missing
// from the table.
func FallbackMethodName(code int) string {
	return fmt.Sprintf("method_%d", code)
}

// FallbackStopName synthesizes a display name for a stop code missing
// from the table.
func FallbackStopName(code int) string {
	return fmt.Sprintf("stop_%d", code)
}
