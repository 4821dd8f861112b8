package chrono_test

import (
	"testing"

	"github.com/warp/chrono"
)

// =============================================================================
// TIME LAPSE TESTS
// =============================================================================

func TestTimeLapse_BuildersComposeByAddition(t *testing.T) {
	// GIVEN: A lapse built from hour, minute, second and millisecond parts
	// WHEN: Viewing it
	// THEN: The decomposition returns exactly the parts that built it

	lapse := chrono.Hours(5).
		And(chrono.Minutes(30)).
		And(chrono.Seconds(15)).
		And(chrono.Milliseconds(250))

	view := lapse.View()
	if view.Hours != 5 || view.Minutes != 30 || view.Seconds != 15 || view.Milliseconds != 250 {
		t.Errorf("expected 5h30m15s250ms, got %+v", view)
	}
}

func TestTimeLapse_ViewCarriesOverflow(t *testing.T) {
	// GIVEN: 90 minutes
	// WHEN: Viewing it
	// THEN: Successive remaindering reports 1 hour 30 minutes

	view := chrono.Minutes(90).View()
	if view.Hours != 1 || view.Minutes != 30 {
		t.Errorf("expected 1h30m, got %+v", view)
	}
}

// =============================================================================
// MOMENT TESTS
// =============================================================================

func TestMoment_EpochMillisRoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 1, -1, 1553994000000, -62135596800000} {
		if got := chrono.FromEpochMillis(ms).EpochMillis(); got != ms {
			t.Errorf("round trip of %d returned %d", ms, got)
		}
	}
}

func TestMoment_DurationSymmetry(t *testing.T) {
	// GIVEN: Any moment and any non-negative lapse
	// WHEN: Moving into the future and then back by the same lapse
	// THEN: The original moment is recovered

	moments := []chrono.Moment{
		chrono.FromEpochMillis(0),
		chrono.FromEpochMillis(-987654321),
		chrono.FromEpochMillis(1553994000000),
	}
	lapses := []chrono.TimeLapse{
		chrono.Milliseconds(0),
		chrono.Seconds(1),
		chrono.Hours(24),
		chrono.Hours(24 * 365).And(chrono.Milliseconds(1)),
	}

	for _, m := range moments {
		for _, l := range lapses {
			if got := m.IntoFuture(l).IntoPast(l); !got.Equal(m) {
				t.Errorf("symmetry broken: %d -> %d", m.EpochMillis(), got.EpochMillis())
			}
		}
	}
}

func TestElapsed_ReportsMagnitudeAndDirection(t *testing.T) {
	a := chrono.FromEpochMillis(1000)
	b := chrono.FromEpochMillis(4600)

	forward := chrono.Elapsed(a, b)
	if forward.Direction != chrono.IntoFuture || !forward.Magnitude.Equal(chrono.Seconds(3).And(chrono.Milliseconds(600))) {
		t.Errorf("unexpected forward elapsed: %+v", forward)
	}

	backward := chrono.Elapsed(b, a)
	if backward.Direction != chrono.IntoPast || !backward.Magnitude.Equal(forward.Magnitude) {
		t.Errorf("unexpected backward elapsed: %+v", backward)
	}

	still := chrono.Elapsed(a, a)
	if still.Direction != chrono.IntoFuture || !still.Magnitude.IsZero() {
		t.Errorf("equal moments should elapse zero into the future, got %+v", still)
	}
}

func TestEarliest(t *testing.T) {
	a := chrono.FromEpochMillis(-5)
	b := chrono.FromEpochMillis(5)

	if !chrono.Earliest(a, b).Equal(a) || !chrono.Earliest(b, a).Equal(a) {
		t.Error("Earliest should return the lesser moment regardless of argument order")
	}
	if !chrono.Earliest(a, a).Equal(a) {
		t.Error("Earliest of equal moments should return that moment")
	}
}

func TestMoment_TotalOrder(t *testing.T) {
	a := chrono.FromEpochMillis(1)
	b := chrono.FromEpochMillis(2)

	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Error("ordering inconsistent")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare inconsistent")
	}
}

func TestMoment_NegativeLapseReversesDirection(t *testing.T) {
	// The representation allows negative lapses; they silently reverse
	// direction rather than fail. Documented, permissive behavior.
	m := chrono.FromEpochMillis(1000)
	if got := m.IntoFuture(chrono.Milliseconds(-400)); got.EpochMillis() != 600 {
		t.Errorf("expected 600, got %d", got.EpochMillis())
	}
}
