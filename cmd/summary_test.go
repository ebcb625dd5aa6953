package cmd

import (
	"testing"
	"time"

	"github.com/beepboop/punchclock/internal/model"
)

func TestDailyRows(t *testing.T) {
	day1 := time.Date(2026, 2, 26, 8, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 2, 27, 9, 0, 0, 0, time.Local)
	punches := []model.Punch{
		closedPunch(day2, 14*time.Minute), // later day first: rows must still be ascending
		closedPunch(day1, 8*time.Minute),
		closedPunch(day1, 2*time.Hour),
	}

	rows, err := dailyRows(punches, 20.0, "$")
	if err != nil {
		t.Fatalf("dailyRows returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("dailyRows returned %d rows, want 3 (header + 2 days)", len(rows))
	}

	want := [][]string{
		{"DATE", "PUNCHES", "HOURS", "PAY"},
		{"2026-02-26", "2", "2.1", "$42.00"},
		{"2026-02-27", "1", "0.2", "$4.00"},
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("rows[%d][%d] = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestDailyRowsCountsOpenPunches(t *testing.T) {
	day := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)
	punches := []model.Punch{
		closedPunch(day, 30*time.Minute),
		{In: day.Add(2 * time.Hour)},
	}

	rows, err := dailyRows(punches, 10.0, "$")
	if err != nil {
		t.Fatalf("dailyRows returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("dailyRows returned %d rows, want 2", len(rows))
	}

	row := rows[1]
	if row[1] != "2" {
		t.Errorf("punch count = %q, want 2 (open punch listed)", row[1])
	}
	if row[2] != "0.5" {
		t.Errorf("hours = %q, want 0.5 (open punch not billed)", row[2])
	}
	if row[3] != "$5.00" {
		t.Errorf("pay = %q, want $5.00", row[3])
	}
}

func TestDailyRowsPropagatesBadPunch(t *testing.T) {
	in := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)
	out := in.Add(-time.Hour)

	if _, err := dailyRows([]model.Punch{{In: in, Out: &out}}, 20.0, "$"); err == nil {
		t.Error("expected error for inverted punch, got nil")
	}
}
