package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/beepboop/punchclock/internal/model"
)

func TestExportRecords(t *testing.T) {
	in := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)
	punches := []model.Punch{
		closedPunch(in, 8*time.Minute),
		{In: in.Add(2 * time.Hour)},
	}

	records := exportRecords(punches)
	if len(records) != 2 {
		t.Fatalf("exportRecords returned %d records, want 2", len(records))
	}

	if records[0].InTime != "2026-02-27T08:00:00" || records[0].OutTime != "2026-02-27T08:08:00" {
		t.Errorf("closed record = %+v, want ISO timestamps", records[0])
	}
	if records[0].Hours == nil || *records[0].Hours != 0.1 {
		t.Errorf("closed record hours = %v, want 0.1", records[0].Hours)
	}

	if records[1].OutTime != "" {
		t.Errorf("open record out = %q, want empty", records[1].OutTime)
	}
	if records[1].Hours != nil {
		t.Errorf("open record hours = %v, want nil", records[1].Hours)
	}
}

func TestExportRecordsJSONOmitsOpenFields(t *testing.T) {
	in := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)
	data, err := json.Marshal(exportRecords([]model.Punch{{In: in}}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `[{"in_time":"2026-02-27T08:00:00"}]`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestWriteExportCSV(t *testing.T) {
	in := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)
	punches := []model.Punch{
		closedPunch(in, 14*time.Minute),
		{In: in.Add(2 * time.Hour)},
	}

	var buf bytes.Buffer
	if err := writeExportCSV(&buf, punches); err != nil {
		t.Fatalf("writeExportCSV returned error: %v", err)
	}

	want := "in_time,out_time,rounded_hours\n" +
		"2026-02-27T08:00:00,2026-02-27T08:14:00,0.2\n" +
		"2026-02-27T10:00:00,,\n"
	if buf.String() != want {
		t.Errorf("CSV output = %q, want %q", buf.String(), want)
	}
}
