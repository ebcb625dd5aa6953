package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beepboop/punchclock/internal/paycalc"
	"github.com/beepboop/punchclock/internal/storage"
	"github.com/beepboop/punchclock/internal/timeutil"
	"github.com/beepboop/punchclock/internal/tracker"
)

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out (close the open punch)",
	Args:  cobra.NoArgs,
	RunE:  runOut,
}

func runOut(cmd *cobra.Command, args []string) error {
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
	punch, err := log.ClockOut(now)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := storage.Save(path, log.Punches()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	elapsed := int64(punch.Elapsed(now) / time.Second)
	slog.Info("clocked out", "at", now.Format(storage.TimeLayout), "elapsed_seconds", elapsed)

	fmt.Printf("Clocked out after %s.", timeutil.FormatDuration(elapsed))
	if hours, err := paycalc.RoundPunch(punch); err == nil {
		fmt.Printf(" Credited: %s h", formatHours(hours))
	}
	fmt.Println()
	return nil
}
