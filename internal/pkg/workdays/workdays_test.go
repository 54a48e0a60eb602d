package workdays

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEndDateCountsStartAsFirstDay(t *testing.T) {
	// Monday + 5 working days ends on Friday of the same week
	end, err := EndDate(date(2026, time.February, 2), 5, nil)
	if err != nil {
		t.Fatalf("EndDate returned error: %v", err)
	}
	if want := date(2026, time.February, 6); !end.Equal(want) {
		t.Fatalf("EndDate = %v, want %v", end, want)
	}
}

func TestEndDateSingleDay(t *testing.T) {
	// A one-day internship starting on a working day ends the same day
	start := date(2026, time.February, 6) // Friday
	end, err := EndDate(start, 1, nil)
	if err != nil {
		t.Fatalf("EndDate returned error: %v", err)
	}
	if !end.Equal(start) {
		t.Fatalf("EndDate = %v, want %v", end, start)
	}
}

func TestEndDateSkipsWeekend(t *testing.T) {
	// Friday + 2 working days crosses the weekend into Monday
	end, err := EndDate(date(2026, time.February, 6), 2, nil)
	if err != nil {
		t.Fatalf("EndDate returned error: %v", err)
	}
	if want := date(2026, time.February, 9); !end.Equal(want) {
		t.Fatalf("EndDate = %v, want %v", end, want)
	}
}

func TestEndDateStartsOnWeekend(t *testing.T) {
	// A Saturday start does not count as a working day
	end, err := EndDate(date(2026, time.February, 7), 1, nil)
	if err != nil {
		t.Fatalf("EndDate returned error: %v", err)
	}
	if want := date(2026, time.February, 9); !end.Equal(want) {
		t.Fatalf("EndDate = %v, want %v", end, want)
	}
}

func TestEndDateSkipsHolidays(t *testing.T) {
	holidays := NewHolidaySet([]time.Time{date(2026, time.February, 4)}) // Wednesday

	end, err := EndDate(date(2026, time.February, 2), 5, holidays)
	if err != nil {
		t.Fatalf("EndDate returned error: %v", err)
	}
	// Mon, Tue, Thu, Fri, then the following Monday
	if want := date(2026, time.February, 9); !end.Equal(want) {
		t.Fatalf("EndDate = %v, want %v", end, want)
	}
}

func TestEndDateHolidayOnWeekendHasNoEffect(t *testing.T) {
	holidays := NewHolidaySet([]time.Time{date(2026, time.February, 7)}) // Saturday

	end, err := EndDate(date(2026, time.February, 2), 5, holidays)
	if err != nil {
		t.Fatalf("EndDate returned error: %v", err)
	}
	if want := date(2026, time.February, 6); !end.Equal(want) {
		t.Fatalf("EndDate = %v, want %v", end, want)
	}
}

func TestEndDateIgnoresClock(t *testing.T) {
	start := time.Date(2026, time.February, 2, 23, 30, 0, 0, time.UTC)
	end, err := EndDate(start, 1, nil)
	if err != nil {
		t.Fatalf("EndDate returned error: %v", err)
	}
	if want := date(2026, time.February, 2); !end.Equal(want) {
		t.Fatalf("EndDate = %v, want %v", end, want)
	}
}

func TestEndDateRejectsInvalidCount(t *testing.T) {
	for _, count := range []int{0, -3} {
		if _, err := EndDate(date(2026, time.February, 2), count, nil); !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("EndDate(count=%d) error = %v, want ErrInvalidCount", count, err)
		}
	}
}

func TestIsWorkingDay(t *testing.T) {
	holidays := NewHolidaySet([]time.Time{date(2026, time.August, 17)})

	cases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"weekday", date(2026, time.February, 3), true},
		{"saturday", date(2026, time.February, 7), false},
		{"sunday", date(2026, time.February, 8), false},
		{"holiday", date(2026, time.August, 17), false},
	}

	for _, tc := range cases {
		if got := IsWorkingDay(tc.day, holidays); got != tc.want {
			t.Errorf("IsWorkingDay(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
