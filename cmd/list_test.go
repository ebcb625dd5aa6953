package cmd

import (
	"testing"
	"time"

	"github.com/beepboop/punchclock/internal/model"
)

func closedPunch(in time.Time, d time.Duration) model.Punch {
	out := in.Add(d)
	return model.Punch{In: in, Out: &out}
}

func TestSortPunches(t *testing.T) {
	base := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)
	early := closedPunch(base, time.Hour)
	late := closedPunch(base.Add(3*time.Hour), time.Hour)
	open := model.Punch{In: base.Add(5 * time.Hour)}

	punches := []model.Punch{open, late, early}
	sorted := sortPunches(punches)

	if !sorted[0].In.Equal(early.In) || !sorted[1].In.Equal(late.In) || !sorted[2].In.Equal(open.In) {
		t.Errorf("sortPunches order = %v, want chronological", sorted)
	}

	// The input slice must stay untouched.
	if !punches[0].In.Equal(open.In) {
		t.Error("sortPunches modified its input")
	}
}

func TestSortPunchesOpenLastOnTie(t *testing.T) {
	base := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)
	open := model.Punch{In: base}
	closed := closedPunch(base, time.Hour)

	sorted := sortPunches([]model.Punch{open, closed})
	if sorted[0].Out == nil {
		t.Error("sortPunches: open punch must sort after closed punch at the same clock-in")
	}
}

func TestPunchRow(t *testing.T) {
	in := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)

	row := punchRow(closedPunch(in, 8*time.Minute))
	want := []string{"2026-02-27", "08:00:00", "08:08:00", "0.1"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("punchRow[%d] = %q, want %q", i, row[i], want[i])
		}
	}
}

func TestPunchRowOpen(t *testing.T) {
	in := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)

	row := punchRow(model.Punch{In: in})
	if row[2] != "— (running)" {
		t.Errorf("punchRow out cell = %q, want running marker", row[2])
	}
	if row[3] != "" {
		t.Errorf("punchRow hours cell = %q, want empty for open punch", row[3])
	}
}

func TestPunchRowInverted(t *testing.T) {
	in := time.Date(2026, 2, 27, 8, 0, 0, 0, time.Local)
	out := in.Add(-time.Hour)

	row := punchRow(model.Punch{In: in, Out: &out})
	if row[3] != "invalid" {
		t.Errorf("punchRow hours cell = %q, want %q", row[3], "invalid")
	}
}
