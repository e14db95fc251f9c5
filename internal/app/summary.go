package app

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"fx-data/internal/model"
)

// PrintSummary prints the full record set as an aligned table, sorted by
// (date, currency) so output is stable across runs.
func PrintSummary(w io.Writer, records []model.ExchangeRateRecord) {
	sorted := make([]model.ExchangeRateRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Currency < sorted[j].Currency
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "date\tbase\tcurrency\trate\tday_of_week\tweekend\tyear\tmonth\tid")
	for _, r := range sorted {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\t%d\t%d\t%s\n",
			r.Date, r.BaseCurrency, r.Currency,
			strconv.FormatFloat(r.ExchangeRate, 'f', -1, 64),
			r.DayOfWeek, r.IsWeekend, r.Year, r.Month, r.ID)
	}
	tw.Flush()
}
