package calendar

import "time"

// Constraint collects the raw selection constraints a caller may set.
// All fields are optional; zero values mean unbounded.
type Constraint struct {
	MinDate time.Time
	MaxDate time.Time

	// MinAge/MaxAge bound the selectable dates relative to today:
	// a minimum age pushes the latest selectable date into the past,
	// a maximum age pushes the earliest one. Zero means unset.
	MinAge int
	MaxAge int
}

// Bounds is the effective [Min, Max] date window after intersecting
// every applicable constraint source. A zero side is unbounded.
type Bounds struct {
	Min time.Time
	Max time.Time
}

// ResolveDateBounds intersects the explicit date bounds with the
// age-derived ones:
//
//	effectiveMax = min(maxDate, today - minAge years)
//	effectiveMin = max(minDate, today - maxAge years)
//
// When sources contradict each other the narrower combination wins
// (later min, earlier max); the result always satisfies Min <= Max
// whenever both sides are bounded.
func ResolveDateBounds(c Constraint, today time.Time) Bounds {
	today = StripTime(today)

	var b Bounds
	if !c.MaxDate.IsZero() {
		b.Max = StripTime(c.MaxDate)
	}
	if c.MinAge > 0 {
		ageMax := today.AddDate(-c.MinAge, 0, 0)
		if b.Max.IsZero() || ageMax.Before(b.Max) {
			b.Max = ageMax
		}
	}

	if !c.MinDate.IsZero() {
		b.Min = StripTime(c.MinDate)
	}
	if c.MaxAge > 0 {
		ageMin := today.AddDate(-c.MaxAge, 0, 0)
		if b.Min.IsZero() || ageMin.After(b.Min) {
			b.Min = ageMin
		}
	}

	// Contradictory inputs collapse to the narrower edge rather than
	// erroring: the later min wins and max is pulled up to it.
	if !b.Min.IsZero() && !b.Max.IsZero() && b.Max.Before(b.Min) {
		b.Max = b.Min
	}

	return b
}

// Contains reports whether the date component of t falls inside the
// bounds. Unbounded sides always pass.
func (b Bounds) Contains(t time.Time) bool {
	d := StripTime(t)
	if !b.Min.IsZero() && d.Before(b.Min) {
		return false
	}
	if !b.Max.IsZero() && d.After(b.Max) {
		return false
	}
	return true
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the value as minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// TimeBounds is an optional [Min, Max] window over the time of day,
// compared as minutes since midnight. Nil sides are unbounded.
type TimeBounds struct {
	Min *TimeOfDay
	Max *TimeOfDay
}

// Allows reports whether the given wall-clock time falls inside the
// window. Contradictory bounds (min after max) admit nothing, the
// narrower-wins reading of an empty window.
func (b TimeBounds) Allows(hour, minute int) bool {
	m := TimeOfDay{Hour: hour, Minute: minute}.Minutes()
	if b.Min != nil && m < b.Min.Minutes() {
		return false
	}
	if b.Max != nil && m > b.Max.Minutes() {
		return false
	}
	return true
}
