package codes

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File names LoadDir expects inside a table directory.
const (
	MethodsFile     = "methods.csv"
	StopReasonsFile = "stop_reasons.csv"
	FlagTokensFile  = "flag_tokens.csv"
)

// LoadDir reads all three code tables from CSV files in dir. Unlike SND
// content, code tables are configuration: any malformed row fails the
// load with an error naming the file and line.
func LoadDir(dir string) (*Tables, error) {
	methods, err := loadCSV(filepath.Join(dir, MethodsFile), parseMethodRow)
	if err != nil {
		return nil, err
	}
	stops, err := loadCSV(filepath.Join(dir, StopReasonsFile), parseStopRow)
	if err != nil {
		return nil, err
	}
	tokens, err := loadCSV(filepath.Join(dir, FlagTokensFile), parseFlagTokenRow)
	if err != nil {
		return nil, err
	}
	return New(methods, stops, tokens), nil
}

// LoadMethodsCSV reads a method table. Expected columns:
// code,name,columns,flags — columns and flags comma-joined inside the field.
func LoadMethodsCSV(r io.Reader) ([]Method, error) {
	return loadCSVReader(r, "methods", parseMethodRow)
}

// LoadStopReasonsCSV reads a stop-reason table. Expected columns: code,name.
func LoadStopReasonsCSV(r io.Reader) ([]StopReason, error) {
	return loadCSVReader(r, "stop_reasons", parseStopRow)
}

// LoadFlagTokensCSV reads a flag-token table. Expected columns:
// token,flag,value,bedrock. Repeated tokens accumulate (multi-flag tokens).
func LoadFlagTokensCSV(r io.Reader) ([]FlagToken, error) {
	return loadCSVReader(r, "flag_tokens", parseFlagTokenRow)
}

func loadCSV[T any](path string, parse func([]string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open code table: %w", err)
	}
	defer f.Close()
	return loadCSVReader(f, filepath.Base(path), parse)
}

func loadCSVReader[T any](r io.Reader, name string, parse func([]string) (T, error)) ([]T, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty table", name)
	}

	// First row is a header.
	out := make([]T, 0, len(records)-1)
	for i, rec := range records[1:] {
		v, err := parse(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, i+2, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseMethodRow(rec []string) (Method, error) {
	if len(rec) < 2 {
		return Method{}, fmt.Errorf("want at least code,name, got %d fields", len(rec))
	}
	code, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return Method{}, fmt.Errorf("method code %q: %w", rec[0], err)
	}
	m := Method{Code: code, Name: strings.TrimSpace(rec[1])}
	if m.Name == "" {
		return Method{}, fmt.Errorf("method %d: empty name", code)
	}
	if len(rec) > 2 {
		m.Columns = splitList(rec[2])
	}
	if len(rec) > 3 {
		m.Flags = splitList(rec[3])
	}
	return m, nil
}

func parseStopRow(rec []string) (StopReason, error) {
	if len(rec) < 2 {
		return StopReason{}, fmt.Errorf("want code,name, got %d fields", len(rec))
	}
	code, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return StopReason{}, fmt.Errorf("stop code %q: %w", rec[0], err)
	}
	name := strings.TrimSpace(rec[1])
	if name == "" {
		return StopReason{}, fmt.Errorf("stop %d: empty name", code)
	}
	return StopReason{Code: code, Name: name}, nil
}

func parseFlagTokenRow(rec []string) (FlagToken, error) {
	if len(rec) < 3 {
		return FlagToken{}, fmt.Errorf("want token,flag,value[,bedrock], got %d fields", len(rec))
	}
	ft := FlagToken{
		Token: strings.TrimSpace(rec[0]),
		Flag:  strings.TrimSpace(rec[1]),
	}
	if ft.Token == "" {
		return FlagToken{}, fmt.Errorf("empty token")
	}
	if v := strings.TrimSpace(rec[2]); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return FlagToken{}, fmt.Errorf("value %q: %w", rec[2], err)
		}
		ft.Value = f
	}
	if len(rec) > 3 {
		b, err := strconv.ParseBool(strings.TrimSpace(rec[3]))
		if err != nil {
			return FlagToken{}, fmt.Errorf("bedrock %q: %w", rec[3], err)
		}
		ft.Bedrock = b
	}
	if ft.Flag == "" && !ft.Bedrock {
		return FlagToken{}, fmt.Errorf("token %q: no flag and not a bedrock marker", ft.Token)
	}
	return ft, nil
}

// splitList splits a comma-joined list field, dropping blanks.
func splitList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
