package service

import (
	"fmt"
	"time"
)

const periodLayout = "2006-01"

// ParsePeriod validates a YYYY-MM payroll period and returns the first
// day of that month.
func ParsePeriod(period string) (time.Time, error) {
	t, err := time.Parse(periodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid payroll period %q, want YYYY-MM: %w", period, err)
	}
	return t, nil
}

func FormatPeriod(t time.Time) string {
	return t.Format(periodLayout)
}

// PreviousPeriod returns the month before now; imports typically cover
// the month that just closed.
func PreviousPeriod() string {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return FormatPeriod(firstOfMonth.AddDate(0, 0, -1))
}
