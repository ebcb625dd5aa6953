// Package tracker maintains the punch log and its clock-in/clock-out
// lifecycle. At most one punch is open at any time, and it is always the
// last one in the log.
package tracker

import (
	"errors"
	"time"

	"github.com/beepboop/punchclock/internal/model"
)

var (
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("not currently clocked in")
)

// Log is an ordered sequence of punches.
type Log struct {
	punches []model.Punch
}

// New returns a Log over the given punches.
func New(punches []model.Punch) *Log {
	return &Log{punches: punches}
}

// Punches returns the punch sequence in insertion order.
func (l *Log) Punches() []model.Punch {
	return l.punches
}

// Active returns the open punch, or nil when clocked out.
func (l *Log) Active() *model.Punch {
	if len(l.punches) == 0 {
		return nil
	}
	last := &l.punches[len(l.punches)-1]
	if last.IsOpen() {
		return last
	}
	return nil
}

// IsClockedIn reports whether an open punch exists.
func (l *Log) IsClockedIn() bool {
	return l.Active() != nil
}

// ClockIn opens a new punch at the given time. Clocking in twice without
// clocking out yields ErrAlreadyClockedIn.
func (l *Log) ClockIn(now time.Time) error {
	if l.IsClockedIn() {
		return ErrAlreadyClockedIn
	}
	l.punches = append(l.punches, model.Punch{In: now})
	return nil
}

// ClockOut closes the open punch at the given time and returns the closed
// punch. Clocking out while clocked out yields ErrNotClockedIn.
func (l *Log) ClockOut(now time.Time) (model.Punch, error) {
	active := l.Active()
	if active == nil {
		return model.Punch{}, ErrNotClockedIn
	}
	out := now
	active.Out = &out
	return *active, nil
}
