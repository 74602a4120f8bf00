// Package clock maps between the stored 24-hour time model and the
// 12-hour wheel display. Time of day is always stored as hour 0-23 and
// minute 0-59; the 12-hour form exists only at the display edge.
package clock

import "fmt"

// Format selects the hour wheel's display convention.
type Format int

const (
	Format24 Format = iota
	Format12
)

// Display is the 12-hour rendering of a stored hour.
type Display struct {
	Hour int // 1..12
	PM   bool
}

// To12Hour converts a stored 24-hour value to its 12-hour display form:
// 0 -> 12 AM, 12 -> 12 PM, others by +/-12.
func To12Hour(hour int) Display {
	hour = wrapHour(hour)
	d := Display{Hour: hour % 12, PM: hour >= 12}
	if d.Hour == 0 {
		d.Hour = 12
	}
	return d
}

// To24Hour converts a 12-hour display form back to the stored value.
// It is the inverse of To12Hour for every hour 0..23.
func To24Hour(d Display) int {
	h := d.Hour % 12
	if d.PM {
		h += 12
	}
	return h
}

// TogglePeriod flips AM/PM on a stored hour, shifting it by 12 while
// keeping the displayed 12-hour digit unchanged.
func TogglePeriod(hour int) int {
	return (wrapHour(hour) + 12) % 24
}

// WithDisplayHour replaces the displayed 12-hour digit while keeping
// the current AM/PM period of the stored hour.
func WithDisplayHour(stored, displayHour int) int {
	return To24Hour(Display{Hour: displayHour, PM: wrapHour(stored) >= 12})
}

// SnapMinute rounds a minute down to the nearest multiple of the
// configured interval. Interval values outside 1..60 mean no snapping.
func SnapMinute(minute, interval int) int {
	minute = ((minute % 60) + 60) % 60
	if interval <= 1 || interval > 60 {
		return minute
	}
	return minute - minute%interval
}

// HourLabel renders a stored hour for the wheel in the given format.
func HourLabel(hour int, f Format) string {
	if f == Format12 {
		return fmt.Sprintf("%2d", To12Hour(hour).Hour)
	}
	return fmt.Sprintf("%02d", wrapHour(hour))
}

// PeriodLabel returns "AM" or "PM" for a stored hour.
func PeriodLabel(hour int) string {
	if wrapHour(hour) >= 12 {
		return "PM"
	}
	return "AM"
}

func wrapHour(h int) int {
	return ((h % 24) + 24) % 24
}
