package snd

// Metadata holds the scalar header data of one sounding block. Pointer
// fields are nil when the corresponding sub-parse failed; a nil field
// signals a recoverable decode failure for that field only, never for
// the whole record.
type Metadata struct {
	BoreholeID string `json:"investigation_point"`

	MethodCode *int    `json:"method_code"`
	MethodName *string `json:"method_name"`

	Day   *int    `json:"day"`
	Month *int    `json:"month"`
	Year  *int    `json:"year"`
	Date  *string `json:"date"`

	StopCode   *int    `json:"stop_code"`
	StopReason *string `json:"stop_desc"`

	DepthIncrement *float64 `json:"depth_increment"`
	DepthBedrock   *float64 `json:"depth_bedrock"`

	// Coordinates are file-global: every record from one file shares
	// the triple taken from its first three lines.
	X float64 `json:"x_coordinate"`
	Y float64 `json:"y_coordinate"`
	Z float64 `json:"z_coordinate"`
}

// SoundingRecord is the output unit: one accepted block's metadata plus
// its decoded data table. Data is never nil; a block whose column decode
// failed carries an empty table.
type SoundingRecord struct {
	Metadata Metadata `json:"main"`
	Data     *Table   `json:"data"`
}

// ParseResult aggregates all records parsed from one file, in marker
// order, together with the diagnostics raised along the way.
type ParseResult struct {
	BoreholeID  string
	Records     []SoundingRecord
	Diagnostics []Diagnostic
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
