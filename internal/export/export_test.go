package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/geosnd/pkg/snd"
)

func testResult() *snd.ParseResult {
	code := 25
	name := "total"
	table := snd.NewTable()
	table.AddColumn("depth", []float64{0.0, 0.2})
	table.AddColumn("feed_trust_force", []float64{12.5, 13.0})
	table.SetComments([]string{"", "stein"})

	return &snd.ParseResult{
		BoreholeID: "BH-101",
		Records: []snd.SoundingRecord{{
			Metadata: snd.Metadata{
				BoreholeID: "BH-101",
				MethodCode: &code,
				MethodName: &name,
				X:          20.25,
				Y:          10.5,
				Z:          3.0,
			},
			Data: table,
		}},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testResult()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	main, ok := records[0]["main"].(map[string]interface{})
	if !ok {
		t.Fatalf("record has no main object: %v", records[0])
	}
	if main["investigation_point"] != "BH-101" || main["method_name"] != "total" {
		t.Errorf("main = %v", main)
	}
}

func TestWriteRecordCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecordCSV(&buf, testResult().Records[0]); err != nil {
		t.Fatalf("WriteRecordCSV() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# investigation_point: BH-101",
		"# method_code: 25",
		"# x_coordinate: 20.25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "stop_code") {
		t.Errorf("output mentions unset metadata:\n%s", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var body []string
	for _, line := range lines {
		if !strings.HasPrefix(line, "#") {
			body = append(body, line)
		}
	}
	want := []string{
		"depth,feed_trust_force,comments",
		"0,12.5,",
		"0.2,13,stein",
	}
	if len(body) != len(want) {
		t.Fatalf("body = %q, want %q", body, want)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, body[i], want[i])
		}
	}
}

func TestWriteRecordCSVEmptyTable(t *testing.T) {
	rec := snd.SoundingRecord{
		Metadata: snd.Metadata{BoreholeID: "BH-E"},
		Data:     snd.NewTable(),
	}
	var buf bytes.Buffer
	if err := WriteRecordCSV(&buf, rec); err != nil {
		t.Fatalf("WriteRecordCSV() error = %v", err)
	}
	// Preamble only, no header row for an empty table.
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.HasPrefix(line, "#") {
			t.Errorf("unexpected data line %q", line)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	result := testResult()

	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()
		paths, err := WriteFiles(dir, "json", result)
		if err != nil {
			t.Fatalf("WriteFiles() error = %v", err)
		}
		want := filepath.Join(dir, "BH-101.json")
		if len(paths) != 1 || paths[0] != want {
			t.Fatalf("paths = %v, want [%s]", paths, want)
		}
		if _, err := os.Stat(want); err != nil {
			t.Errorf("output file missing: %v", err)
		}
	})

	t.Run("csv", func(t *testing.T) {
		dir := t.TempDir()
		paths, err := WriteFiles(dir, "csv", result)
		if err != nil {
			t.Fatalf("WriteFiles() error = %v", err)
		}
		want := filepath.Join(dir, "BH-101_0.csv")
		if len(paths) != 1 || paths[0] != want {
			t.Fatalf("paths = %v, want [%s]", paths, want)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := WriteFiles(t.TempDir(), "parquet", result); err == nil {
			t.Error("WriteFiles() error = nil, want error")
		}
	})
}
