package model

import "time"

// Punch represents a single clock-in/clock-out pair. Out is nil while the
// punch is still open.
type Punch struct {
	In  time.Time
	Out *time.Time
}

// IsOpen reports whether the punch has not been clocked out yet.
func (p Punch) IsOpen() bool {
	return p.Out == nil
}

// Elapsed returns the wall-clock span of the punch. Open punches are
// measured against now; the result never goes below zero.
func (p Punch) Elapsed(now time.Time) time.Duration {
	end := now
	if p.Out != nil {
		end = *p.Out
	}
	if d := end.Sub(p.In); d > 0 {
		return d
	}
	return 0
}

// PaySummary holds the aggregated result of pricing a set of punches.
type PaySummary struct {
	TotalHours float64
	TotalPay   float64
}
