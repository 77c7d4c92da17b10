package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatAmount renders a whole-unit amount in rupiah style, e.g. Rp200.000
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return sign + "Rp" + b.String()
}

// FormatRemaining describes how long an auction stays open, using the largest whole unit
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "closed"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case days > 0:
		return plural(days, "day") + " left"
	case hours > 0:
		return plural(hours, "hour") + " left"
	default:
		return plural(minutes, "minute") + " left"
	}
}

// FormatTime renders t in the layout used for listings
func FormatTime(t time.Time) string {
	return t.Format("02 Jan 2006 15:04")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
