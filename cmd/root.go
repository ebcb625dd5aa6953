package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beepboop/punchclock/internal/config"
	"github.com/beepboop/punchclock/internal/logger"
	"github.com/beepboop/punchclock/internal/storage"
)

// cfg is loaded once per invocation before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "punchclock",
	Short: "punchclock – a punch-card time tracker with 6-minute billing",
	Long: `punchclock is a single-binary, file-based punch clock.
Clock in and out during the day; every punch is rounded to the nearest
6-minute increment (0.1 h) and priced at your hourly wage. All data is
stored as a human-readable CSV file.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initApp)

	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
}

// initApp loads the configuration and points the default logger at the log
// file. It runs once before any command.
func initApp() {
	cfgPath, err := config.FilePath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err = config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logPath, err := logger.FilePath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Init(logPath, cfg.LogLevel)
}

// dataFilePath resolves the punch file location: the config override wins,
// otherwise the XDG default.
func dataFilePath() (string, error) {
	if cfg != nil && cfg.DataFile != "" {
		return cfg.DataFile, nil
	}
	return storage.DefaultFilePath()
}
