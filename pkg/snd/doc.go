// Package snd parses GeoSuite SND files, the whitespace-delimited text
// export format geotechnical drilling equipment uses to record borehole
// sounding data.
//
// An SND file starts with three coordinate lines and is segmented by
// marker lines consisting of a single asterisk. Each segment ("block")
// that passes a sentinel check holds two header lines (method code and
// date; block kind and stop code) followed by numeric data rows. Data
// rows may carry trailing toggle tokens that switch drilling-condition
// flags (flushing, extra rotation, ramming, pumping) on or off from that
// row forward, plus a bedrock-hit marker and free-text comments.
//
// The parser never aborts on malformed content. Field-level decode
// failures null the affected metadata field, block-level failures leave
// that block's data table empty, and everything is reported as
// Diagnostics on the ParseResult. Only unreadable input or unparsable
// header coordinates fail a parse outright: SND files in the wild are
// frequently hand-edited, and partial data beats none.
//
// Construct a Parser from a codes.Tables (codes.Default covers standard
// GeoSuite exports) and parse:
//
//	parser := snd.NewParser(codes.Default(), logger)
//	result, err := parser.ParseFile("BH-101.snd")
package snd
