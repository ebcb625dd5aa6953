package cmd

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beepboop/punchclock/internal/model"
	"github.com/beepboop/punchclock/internal/paycalc"
	"github.com/beepboop/punchclock/internal/storage"
)

var listRange rangeFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List punches in a date range",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listRange.register(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	from, to, err := listRange.resolve(now)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	filtered, err := paycalc.FilterByDateRange(punches, from, to)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	printPunchTable(filtered)
	return nil
}

// printPunchTable renders punches as a boxed table, one row per punch.
func printPunchTable(punches []model.Punch) {
	if len(punches) == 0 {
		pterm.Info.Println("No punches found for the specified date range")
		return
	}

	rows := make([][]string, 0, len(punches)+1)
	rows = append(rows, []string{"DATE", "IN", "OUT", "HOURS"})
	for _, p := range sortPunches(punches) {
		rows = append(rows, punchRow(p))
	}

	str, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(rows).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render punch table: %s", err.Error())
		return
	}
	fmt.Println(str)
}

// punchRow renders one punch as a table row. Open punches show a running
// marker instead of a clock-out time and no rounded hours.
func punchRow(p model.Punch) []string {
	out := "— (running)"
	hours := ""
	if p.Out != nil {
		out = p.Out.Format("15:04:05")
		if h, err := paycalc.RoundPunch(p); err == nil {
			hours = formatHours(h)
		} else {
			hours = "invalid"
		}
	}
	return []string{
		p.In.Format(dateLayout),
		p.In.Format("15:04:05"),
		out,
		hours,
	}
}

// sortPunches returns a copy ordered by clock-in time; within a tie the
// open punch sorts last.
func sortPunches(punches []model.Punch) []model.Punch {
	sorted := slices.Clone(punches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].In.Equal(sorted[j].In) {
			return sorted[i].In.Before(sorted[j].In)
		}
		a, b := sorted[i].Out, sorted[j].Out
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
	return sorted
}
