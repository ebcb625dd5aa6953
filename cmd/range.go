package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beepboop/punchclock/internal/timeutil"
)

const dateLayout = "2006-01-02"

// defaultRangeDays is the reporting window selected when no range flag is
// given: today and the six days before it.
const defaultRangeDays = 7

// rangeFlags is the date-range selection shared by list, summary, and
// export. The most specific flag set wins.
type rangeFlags struct {
	from  string
	to    string
	on    string
	today bool
	week  bool
	all   bool
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "Start date (YYYY-MM-DD); required when --to is specified")
	cmd.Flags().StringVar(&r.to, "to", "", "End date (YYYY-MM-DD); defaults to today")
	cmd.Flags().StringVar(&r.on, "on", "", "A single date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&r.today, "today", false, "Today only")
	cmd.Flags().BoolVar(&r.week, "week", false, "This ISO week")
	cmd.Flags().BoolVar(&r.all, "all", false, "Every recorded punch")
}

// resolve turns the flags into inclusive [from, to] day bounds. Without any
// flag the window is the last defaultRangeDays days ending today.
func (r *rangeFlags) resolve(now time.Time) (time.Time, time.Time, error) {
	switch {
	case r.all:
		return time.Time{}, timeutil.EndOfDay(now), nil

	case r.on != "":
		d, err := time.ParseInLocation(dateLayout, r.on, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --on value %q: expected YYYY-MM-DD", r.on)
		}
		return timeutil.StartOfDay(d), timeutil.EndOfDay(d), nil

	case r.week:
		from, to := timeutil.WeekRange(now)
		return from, to, nil

	case r.today:
		return timeutil.StartOfDay(now), timeutil.EndOfDay(now), nil

	case r.from != "" || r.to != "":
		if r.from == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("--from is required when --to is specified")
		}
		from, err := time.ParseInLocation(dateLayout, r.from, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from value %q: expected YYYY-MM-DD", r.from)
		}

		to := timeutil.EndOfDay(now)
		if r.to != "" {
			t, err := time.ParseInLocation(dateLayout, r.to, now.Location())
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("invalid --to value %q: expected YYYY-MM-DD", r.to)
			}
			to = timeutil.EndOfDay(t)
		}
		return timeutil.StartOfDay(from), to, nil

	default:
		return timeutil.StartOfDay(now.AddDate(0, 0, -(defaultRangeDays - 1))), timeutil.EndOfDay(now), nil
	}
}
