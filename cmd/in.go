package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beepboop/punchclock/internal/storage"
	"github.com/beepboop/punchclock/internal/tracker"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in (open a new punch)",
	Args:  cobra.NoArgs,
	RunE:  runIn,
}

func runIn(cmd *cobra.Command, args []string) error {
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
	if err := log.ClockIn(now); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := storage.Save(path, log.Punches()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	slog.Info("clocked in", "at", now.Format(storage.TimeLayout))
	fmt.Printf("Clocked in at %s\n", now.Format("15:04:05"))
	return nil
}
