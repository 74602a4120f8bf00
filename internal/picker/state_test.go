package picker

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangeTap_FirstTapSetsStart(t *testing.T) {
	r, complete := Range{}.Tap(day(2024, time.June, 10))

	if complete {
		t.Error("first tap reported a complete range")
	}
	if !r.Start.Equal(day(2024, time.June, 10)) || !r.End.IsZero() {
		t.Errorf("range = %+v, want start only", r)
	}
}

func TestRangeTap_SecondTapAfterStartCompletes(t *testing.T) {
	r, _ := Range{}.Tap(day(2024, time.June, 10))
	r, complete := r.Tap(day(2024, time.June, 15))

	if !complete {
		t.Error("tap after start did not complete the range")
	}
	if !r.Start.Equal(day(2024, time.June, 10)) || !r.End.Equal(day(2024, time.June, 15)) {
		t.Errorf("range = %+v", r)
	}
}

func TestRangeTap_EarlierTapRestartsRange(t *testing.T) {
	r, _ := Range{}.Tap(day(2024, time.June, 10))
	r, complete := r.Tap(day(2024, time.June, 5))

	if complete {
		t.Error("earlier tap completed the range")
	}
	if !r.Start.Equal(day(2024, time.June, 5)) {
		t.Errorf("start = %s, want restart at June 5", r.Start)
	}
	if !r.End.IsZero() {
		t.Errorf("end = %s, want cleared", r.End)
	}
}

func TestRangeTap_SameDayCompletesSingleDayRange(t *testing.T) {
	r, _ := Range{}.Tap(day(2024, time.June, 10))
	r, complete := r.Tap(day(2024, time.June, 10))

	if !complete {
		t.Error("same-day tap did not complete")
	}
	if !r.Start.Equal(r.End) {
		t.Errorf("range = %+v, want single-day", r)
	}
}

func TestRangeTap_TapAfterCompleteStartsNewRange(t *testing.T) {
	r, _ := Range{}.Tap(day(2024, time.June, 10))
	r, _ = r.Tap(day(2024, time.June, 15))
	r, complete := r.Tap(day(2024, time.July, 1))

	if complete {
		t.Error("tap on a complete range reported complete")
	}
	if !r.Start.Equal(day(2024, time.July, 1)) || !r.End.IsZero() {
		t.Errorf("range = %+v, want fresh start", r)
	}
}

func TestRangeTap_NeverInverted(t *testing.T) {
	taps := []time.Time{
		day(2024, time.June, 20),
		day(2024, time.June, 5),
		day(2024, time.June, 1),
		day(2024, time.June, 30),
		day(2024, time.May, 1),
	}

	var r Range
	for _, d := range taps {
		r, _ = r.Tap(d)
		if !r.End.IsZero() && r.End.Before(r.Start) {
			t.Fatalf("inverted range after tapping %s: %+v", d, r)
		}
	}
}

func TestZoom_Bidirectional(t *testing.T) {
	v := ViewDays
	v = zoomOut(v)
	if v != ViewMonths {
		t.Fatalf("zoomOut(days) = %v", v)
	}
	v = zoomOut(v)
	if v != ViewYears {
		t.Fatalf("zoomOut(months) = %v", v)
	}
	if zoomOut(v) != ViewYears {
		t.Error("zoomOut(years) should stay at years")
	}

	v = zoomIn(v)
	if v != ViewMonths {
		t.Fatalf("zoomIn(years) = %v", v)
	}
	v = zoomIn(v)
	if v != ViewDays {
		t.Fatalf("zoomIn(months) = %v", v)
	}
	if zoomIn(v) != ViewDays {
		t.Error("zoomIn(days) should stay at days")
	}
}

func TestInitialView(t *testing.T) {
	if initialView(ModeTime) != ViewTime {
		t.Error("time-only mode should start on the wheel")
	}
	for _, mode := range []Mode{ModeSingle, ModeRange, ModeDateTime} {
		if initialView(mode) != ViewDays {
			t.Errorf("mode %v should start on days", mode)
		}
	}
}

func TestLifecycle_HappyPath(t *testing.T) {
	l := Lifecycle{}
	if l.Phase() != PhaseUnmounted {
		t.Fatalf("zero lifecycle phase = %v", l.Phase())
	}

	l = l.OpenRequested()
	if l.Phase() != PhaseOpening {
		t.Fatalf("after OpenRequested: %v", l.Phase())
	}
	l = l.Opened()
	if l.Phase() != PhaseOpen {
		t.Fatalf("after Opened: %v", l.Phase())
	}
	l = l.CloseRequested()
	if l.Phase() != PhaseClosing {
		t.Fatalf("after CloseRequested: %v", l.Phase())
	}
	l = l.Closed()
	if l.Phase() != PhaseUnmounted {
		t.Fatalf("after Closed: %v", l.Phase())
	}
}

func TestLifecycle_InvalidTransitionsIgnored(t *testing.T) {
	l := Lifecycle{}

	// Closing while unmounted does nothing.
	if l.CloseRequested().Phase() != PhaseUnmounted {
		t.Error("CloseRequested from unmounted changed phase")
	}
	// Opened without OpenRequested does nothing.
	if l.Opened().Phase() != PhaseUnmounted {
		t.Error("Opened from unmounted changed phase")
	}
	// Cancelling mid-open is allowed.
	if l.OpenRequested().CloseRequested().Phase() != PhaseClosing {
		t.Error("CloseRequested from opening should close")
	}
}
