// Package export writes parse results to downstream formats. The parser
// core only returns records; what happens to them afterwards lives here,
// behind the CLI.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/msto63/geosnd/pkg/snd"
)

// WriteJSON writes all records of one parse result as a single indented
// JSON document.
func WriteJSON(w io.Writer, result *snd.ParseResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result.Records)
}

// WriteRecordCSV writes one sounding record as CSV: the metadata as a
// "# key: value" preamble, then a header row and the data rows. Column
// order is the table's: numeric layout, flag columns, comments.
func WriteRecordCSV(w io.Writer, rec snd.SoundingRecord) error {
	if err := writeMetadataPreamble(w, rec.Metadata); err != nil {
		return err
	}

	table := rec.Data
	names := table.ColumnNames()
	comments := table.Comments()

	header := append([]string{}, names...)
	if comments != nil {
		header = append(header, "comments")
	}
	if len(header) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	columns := make([][]float64, len(names))
	for i, name := range names {
		columns[i], _ = table.Column(name)
	}
	for r := 0; r < table.Len(); r++ {
		row := make([]string, 0, len(header))
		for _, col := range columns {
			row = append(row, strconv.FormatFloat(col[r], 'g', -1, 64))
		}
		if comments != nil {
			row = append(row, comments[r])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeMetadataPreamble(w io.Writer, m snd.Metadata) error {
	var err error
	line := func(key string, value interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, "# %s: %v\n", key, value)
		}
	}
	ffloat := func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	line("investigation_point", m.BoreholeID)
	if m.MethodCode != nil {
		line("method_code", *m.MethodCode)
	}
	if m.MethodName != nil {
		line("method_name", *m.MethodName)
	}
	if m.Date != nil {
		line("date", *m.Date)
	}
	if m.StopCode != nil {
		line("stop_code", *m.StopCode)
	}
	if m.StopReason != nil {
		line("stop_desc", *m.StopReason)
	}
	if m.DepthIncrement != nil {
		line("depth_increment", ffloat(*m.DepthIncrement))
	}
	if m.DepthBedrock != nil {
		line("depth_bedrock", ffloat(*m.DepthBedrock))
	}
	line("x_coordinate", ffloat(m.X))
	line("y_coordinate", ffloat(m.Y))
	line("z_coordinate", ffloat(m.Z))
	return err
}

// WriteFiles exports a parse result into dir in the given format ("json"
// or "csv") and returns the paths written. JSON produces one file per
// parse result, CSV one file per record.
func WriteFiles(dir, format string, result *snd.ParseResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	switch format {
	case "json":
		path := filepath.Join(dir, result.BoreholeID+".json")
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := WriteJSON(f, result); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		return []string{path}, nil

	case "csv":
		paths := make([]string, 0, len(result.Records))
		for i, rec := range result.Records {
			path := filepath.Join(dir, fmt.Sprintf("%s_%d.csv", result.BoreholeID, i))
			f, err := os.Create(path)
			if err != nil {
				return paths, err
			}
			err = WriteRecordCSV(f, rec)
			f.Close()
			if err != nil {
				return paths, fmt.Errorf("write %s: %w", path, err)
			}
			paths = append(paths, path)
		}
		return paths, nil

	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
