package codes

// Flag column names used by the default tables.
const (
	FlagFlushing  = "flushing"
	FlagExtraSpin = "extra_spin"
	FlagRamming   = "ramming"
	FlagPumping   = "pumping"
)

// Default sounding flag set for methods whose data-row tails carry
// toggle tokens (total and rotary pressure soundings).
var defaultSoundingFlags = []string{FlagFlushing, FlagExtraSpin, FlagRamming, FlagPumping}

// Default returns the code tables GeoSuite exports are written against.
func Default() *Tables {
	methods := []Method{
		{Code: 7, Name: "cpt", Columns: []string{"depth", "feed_trust_force", "pore_pressure", "friction", "pressure", "resistivity"}},
		{Code: 21, Name: "rotary"},
		{Code: 22, Name: "simple"},
		{Code: 23, Name: "rps", Columns: []string{"depth", "feed_trust_force"}, Flags: defaultSoundingFlags},
		{Code: 25, Name: "total", Columns: []string{"depth", "feed_trust_force", "interval", "pumping_rate"}, Flags: defaultSoundingFlags},
		// rock_drilling is an older version of a total sounding that has
		// no feed force on the way down.
		{Code: 26, Name: "rock_drilling", Columns: []string{"depth", "feed_trust_force", "interval", "pumping_rate"}},
	}

	stops := []StopReason{
		{Code: 90, Name: "drilling_abandoned_prematurely"},
		{Code: 91, Name: "abandoned_hit_hard_surface"},
		{Code: 92, Name: "assumed_hit_boulder"},
		{Code: 93, Name: "assumed_bedrock"},
		{Code: 94, Name: "reached_bedrock"},
		{Code: 95, Name: "broken_drill"},
		{Code: 96, Name: "other_fault"},
		{Code: 97, Name: "drilling_abandoned"},
	}

	// Each condition has a letter toggle pair and a numeric alias pair.
	// D1/D2 (76/77) toggle ramming and flushing together.
	tokens := []FlagToken{
		{Token: "R1", Flag: FlagExtraSpin, Value: 1},
		{Token: "R2", Flag: FlagExtraSpin, Value: 0},
		{Token: "70", Flag: FlagExtraSpin, Value: 1},
		{Token: "71", Flag: FlagExtraSpin, Value: 0},

		{Token: "y1", Flag: FlagFlushing, Value: 1},
		{Token: "y2", Flag: FlagFlushing, Value: 0},
		{Token: "72", Flag: FlagFlushing, Value: 1},
		{Token: "73", Flag: FlagFlushing, Value: 0},

		{Token: "S1", Flag: FlagRamming, Value: 1},
		{Token: "S2", Flag: FlagRamming, Value: 0},
		{Token: "74", Flag: FlagRamming, Value: 1},
		{Token: "75", Flag: FlagRamming, Value: 0},

		{Token: "D1", Flag: FlagRamming, Value: 1},
		{Token: "D1", Flag: FlagFlushing, Value: 1},
		{Token: "D2", Flag: FlagRamming, Value: 0},
		{Token: "D2", Flag: FlagFlushing, Value: 0},
		{Token: "76", Flag: FlagRamming, Value: 1},
		{Token: "76", Flag: FlagFlushing, Value: 1},
		{Token: "77", Flag: FlagRamming, Value: 0},
		{Token: "77", Flag: FlagFlushing, Value: 0},

		{Token: "P1", Flag: FlagPumping, Value: 1},
		{Token: "P2", Flag: FlagPumping, Value: 0},
		{Token: "78", Flag: FlagPumping, Value: 1},
		{Token: "79", Flag: FlagPumping, Value: 0},

		{Token: "F", Bedrock: true},
		{Token: "43", Bedrock: true},
	}

	return New(methods, stops, tokens)
}
