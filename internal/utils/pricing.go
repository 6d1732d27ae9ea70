package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// RentalDays returns the number of chargeable days between start and
// end where both dates are included, so a same-day rental is 1 day.
func RentalDays(start, end time.Time) (int32, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date must be >= start date")
	}
	days := int32(end.Sub(start).Hours()/24) + 1
	return days, nil
}

// TotalPriceCents computes the booking price in integer cents. Prices
// never pass through floating point so there is no rounding drift.
func TotalPriceCents(dailyRateCents, days int32) int32 {
	return dailyRateCents * days
}

// FormatCents renders a cent amount as a decimal currency string,
// e.g. 15000 -> "150.00".
func FormatCents(cents int32) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
