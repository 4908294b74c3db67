package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/evaluate"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

func testReport(t *testing.T) *model.Report {
	t.Helper()
	ev, err := evaluate.New(model.DefaultBatterySpec(), nil)
	if err != nil {
		t.Fatal(err)
	}
	rep, err := ev.Evaluate(model.DefaultInput())
	if err != nil {
		t.Fatal(err)
	}
	return rep
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testReport(t)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var rep model.Report
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if rep.InrushCurrentA != 50 {
		t.Errorf("inrush = %g", rep.InrushCurrentA)
	}
}

func TestWriteCapacityCSV(t *testing.T) {
	rep := testReport(t)
	var buf bytes.Buffer
	if err := WriteCapacityCSV(&buf, rep); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != len(rep.Months)+1 {
		t.Fatalf("rows = %d, want %d", len(rows), len(rep.Months)+1)
	}
	if rows[0][0] != "month" {
		t.Errorf("header = %v", rows[0])
	}
	if len(rows[0]) != len(rep.Curves)+1 {
		t.Errorf("columns = %d, want %d", len(rows[0]), len(rep.Curves)+1)
	}
	if !strings.HasPrefix(rows[0][1], "capacity_pct_") {
		t.Errorf("column header = %q", rows[0][1])
	}
	if rows[1][1] != "95" {
		t.Errorf("t=0 value = %q, want 95", rows[1][1])
	}
}

func TestWriteAgingCSV(t *testing.T) {
	rep := testReport(t)
	var buf bytes.Buffer
	if err := WriteAgingCSV(&buf, rep); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != len(rep.AgingYears)+1 {
		t.Fatalf("rows = %d, want %d", len(rows), len(rep.AgingYears)+1)
	}
	if rows[1][0] != "0" {
		t.Errorf("first year = %q", rows[1][0])
	}
}
