package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beepboop/punchclock/internal/paycalc"
	"github.com/beepboop/punchclock/internal/storage"
	"github.com/beepboop/punchclock/internal/timeutil"
	"github.com/beepboop/punchclock/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current punch status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()

	path, err := dataFilePath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	punches, err := storage.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := tracker.New(punches)

	fmt.Printf("Now: %s\n", now.Format("2006-01-02 15:04:05"))

	if active := log.Active(); active != nil {
		since := active.In.Format("15:04:05")
		if !timeutil.SameDay(active.In, now) {
			since = active.In.Format("2006-01-02 15:04:05")
		}
		elapsed := int64(active.Elapsed(now) / time.Second)

		pterm.Success.Println("Clocked in")
		fmt.Printf("  Since: %s\n", since)
		fmt.Printf("  Elapsed: %s\n", timeutil.FormatDurationHHMMSS(elapsed))
		fmt.Printf("  Credits %s h if you clock out now\n", formatHours(paycalc.RoundDuration(active.Elapsed(now))))
		return nil
	}

	// Idle — show today's rounded total.
	today, err := paycalc.FilterByDateRange(log.Punches(), now, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	sum, err := paycalc.Summarize(today, cfg.Wage)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.Info.Println("Not clocked in")
	fmt.Printf("Today: %s h logged (%s).\n", formatHours(sum.TotalHours), formatMoney(cfg.Currency, sum.TotalPay))
	return nil
}
