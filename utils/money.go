package utils

import "fmt"

// FormatMinorUnits renders an amount stored in minor currency units as a
// major-unit string, e.g. 500000 -> "5000.00". Integer division only, so the
// stored value round-trips exactly.
func FormatMinorUnits(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
