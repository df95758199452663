package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/questnote/pkg/calendar"
	"tableflip.dev/questnote/pkg/datekey"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-6-28" or --on="6/28".`)
}

// GetOn resolves the flag against now, in now's location. A short date
// without a year that would land after today is taken from last year, since
// diary entries are never written ahead of time. 2/29 resolves to the most
// recent leap year.
func (o *OnOptions) GetOn(now time.Time) (datekey.Day, bool, error) {
	if o.OnString == "" {
		return datekey.Day{}, false, nil
	}
	if t, err := time.Parse(layoutISO, o.OnString); err == nil {
		return datekey.Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}, true, nil
	}
	t, err := time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return datekey.Day{}, false, err
	}

	today := datekey.DayOf(now, now.Location())
	for year := today.Year; year > today.Year-8; year-- {
		d := datekey.Day{Year: year, Month: t.Month(), Day: t.Day()}
		if t.Day() > calendar.DaysIn(year, t.Month()) || today.Before(d) {
			continue
		}
		return d, true, nil
	}
	return datekey.Day{}, false, fmt.Errorf("no date %q on or before %s", o.OnString, today)
}
