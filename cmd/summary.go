package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beepboop/punchclock/internal/model"
	"github.com/beepboop/punchclock/internal/paycalc"
	"github.com/beepboop/punchclock/internal/storage"
	"github.com/beepboop/punchclock/internal/timeutil"
)

var (
	summaryRange rangeFlags
	summaryWage  float64
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show rounded hours and pay for a date range",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryRange.register(summaryCmd)
	summaryCmd.Flags().Float64Var(&summaryWage, "wage", 0, "Hourly wage override (defaults to the configured wage)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	now := time.Now()

	wage := cfg.Wage
	if cmd.Flags().Changed("wage") {
		wage = summaryWage
	}

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

	from, to, err := summaryRange.resolve(now)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	filtered, err := paycalc.FilterByDateRange(punches, from, to)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	sum, err := paycalc.Summarize(filtered, wage)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if len(filtered) == 0 {
		pterm.Info.Println("No punches found for the specified date range")
	} else {
		rows, err := dailyRows(filtered, wage, cfg.Currency)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		str, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(rows).Srender()
		if err != nil {
			pterm.Error.Printfln("Failed to render summary table: %s", err.Error())
			os.Exit(2)
		}
		fmt.Println(str)
	}

	if summaryRange.week {
		fmt.Printf("Week %s\n", timeutil.ISOWeekLabel(now))
	}
	fmt.Printf("Total hours (rounded): %s\n", formatHours(sum.TotalHours))
	fmt.Printf("Pay (rounded): %s\n", formatMoney(cfg.Currency, sum.TotalPay))
	return nil
}

// dailyRows aggregates punches per calendar day into table rows, header
// first. Days appear in ascending date order.
func dailyRows(punches []model.Punch, wage float64, currency string) ([][]string, error) {
	days := map[string][]model.Punch{}
	var order []string
	for _, p := range punches {
		day := p.In.Format(dateLayout)
		if _, seen := days[day]; !seen {
			order = append(order, day)
		}
		days[day] = append(days[day], p)
	}
	sort.Strings(order)

	rows := make([][]string, 0, len(order)+1)
	rows = append(rows, []string{"DATE", "PUNCHES", "HOURS", "PAY"})
	for _, day := range order {
		sum, err := paycalc.Summarize(days[day], wage)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{
			day,
			strconv.Itoa(len(days[day])),
			formatHours(sum.TotalHours),
			formatMoney(currency, sum.TotalPay),
		})
	}
	return rows, nil
}
