package utils

import (
	"fmt"
	"time"
)

// dateLayout is the calendar-day layout behind the 8-digit ordinal format.
const dateLayout = "20060102"

// ParseDate validates an 8-digit ordinal date string (YYYYMMDD) and returns
// its integer form. The operational schema stores dates as plain integers
// with no time component.
func ParseDate(s string) (int, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, expected YYYYMMDD: %w", s, err)
	}
	return t.Year()*10000 + int(t.Month())*100 + t.Day(), nil
}

// ValidDate reports whether the integer is a real calendar day in YYYYMMDD form.
func ValidDate(d int) bool {
	if d < 10000101 || d > 99991231 {
		return false
	}
	_, err := time.Parse(dateLayout, fmt.Sprintf("%08d", d))
	return err == nil
}

// FormatDate renders an ordinal date as DD-MM-YYYY for human-facing fields,
// matching the presentation used by the field-capture screens.
func FormatDate(d int) string {
	s := fmt.Sprintf("%08d", d)
	return s[6:8] + "-" + s[4:6] + "-" + s[0:4]
}
