// Package paycalc implements the billing arithmetic of punchclock: punches
// are rounded half-up to the nearest 6-minute increment (0.1 h), rounded
// hours are summed, and the total is priced at an hourly wage.
//
// All rounding happens on integers so that repeated aggregation cannot
// accumulate floating-point drift.
package paycalc

import (
	"errors"
	"math"
	"time"

	"github.com/beepboop/punchclock/internal/model"
	"github.com/beepboop/punchclock/internal/timeutil"
)

// Increment is the smallest billable unit of time.
const Increment = 6 * time.Minute

var (
	// ErrInvalidPunch marks a punch that cannot be billed: still open, or
	// with a clock-out before its clock-in.
	ErrInvalidPunch = errors.New("invalid punch: missing or inverted clock-out time")

	// ErrInvalidWage marks a negative or non-numeric hourly wage.
	ErrInvalidWage = errors.New("hourly wage must be zero or greater")

	// ErrInvalidRange marks a date range whose start lies after its end.
	ErrInvalidRange = errors.New("start date must not be after end date")
)

// RoundPunch returns the billable hours of a closed punch: its duration
// rounded half-up to the nearest increment, as a non-negative multiple of
// 0.1. Open or inverted punches yield ErrInvalidPunch.
func RoundPunch(p model.Punch) (float64, error) {
	t, err := punchTenths(p)
	if err != nil {
		return 0, err
	}
	return float64(t) / 10, nil
}

// RoundDuration rounds an elapsed duration to tenths of an hour with the
// same half-up rule as RoundPunch. Negative durations count as zero.
func RoundDuration(d time.Duration) float64 {
	if d < 0 {
		d = 0
	}
	return float64(tenths(d)) / 10
}

// Summarize totals the rounded hours of all closed punches and prices them
// at the given hourly wage. Open punches contribute nothing. The pay figure
// is rounded half-up to whole cents.
func Summarize(punches []model.Punch, wage float64) (model.PaySummary, error) {
	if wage < 0 || math.IsNaN(wage) || math.IsInf(wage, 0) {
		return model.PaySummary{}, ErrInvalidWage
	}

	var total int64
	for _, p := range punches {
		if p.IsOpen() {
			continue
		}
		t, err := punchTenths(p)
		if err != nil {
			return model.PaySummary{}, err
		}
		total += t
	}

	hours := float64(total) / 10
	return model.PaySummary{
		TotalHours: hours,
		TotalPay:   RoundCents(hours * wage),
	}, nil
}

// FilterByDateRange returns, in input order, the punches whose clock-in
// falls on a calendar day within [start, end]. The time of day of the
// bounds is ignored. An inverted range yields ErrInvalidRange.
func FilterByDateRange(punches []model.Punch, start, end time.Time) ([]model.Punch, error) {
	from, to := timeutil.DayKey(start), timeutil.DayKey(end)
	if from > to {
		return nil, ErrInvalidRange
	}

	filtered := []model.Punch{}
	for _, p := range punches {
		if k := timeutil.DayKey(p.In); k >= from && k <= to {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// RoundCents rounds a non-negative amount half-up to two decimal places.
func RoundCents(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}

// punchTenths returns the billable duration of a closed punch in tenths of
// an hour.
func punchTenths(p model.Punch) (int64, error) {
	if p.Out == nil || p.Out.Before(p.In) {
		return 0, ErrInvalidPunch
	}
	return tenths(p.Out.Sub(p.In)), nil
}

// tenths rounds a duration to whole increments. Ties go up: exactly half an
// increment rounds to the next one.
func tenths(d time.Duration) int64 {
	secs := int64(d / time.Second)
	inc := int64(Increment / time.Second)
	return (secs + inc/2) / inc
}
