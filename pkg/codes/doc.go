// Package codes holds the lookup tables the SND parser resolves raw
// file codes against: sounding methods (with their per-method numeric
// column layouts and applicable condition flags), stop reasons, and the
// toggle tokens that encode drilling conditions in data-row tails.
//
// Tables are immutable once constructed. Default() returns the tables
// shipped with GeoSuite exports; LoadDir reads replacement tables from
// CSV files for projects that use site-specific code sets.
package codes
