package validation

import (
	"testing"
	"time"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

func TestDurationBetween_BorrowArithmetic(t *testing.T) {
	start := model.NewDate(2020, time.January, 15)
	end := model.NewDate(2022, time.March, 10)

	d := DurationBetween(start, end)
	if d.Years != 2 || d.Months != 1 || d.Days != 23 {
		t.Errorf("expected 2y 1m 23d, got %dy %dm %dd", d.Years, d.Months, d.Days)
	}
}

func TestDurationBetween_ExactYears(t *testing.T) {
	start := model.NewDate(2015, time.June, 1)
	end := model.NewDate(2020, time.June, 1)

	d := DurationBetween(start, end)
	if d.Years != 5 || d.Months != 0 || d.Days != 0 {
		t.Errorf("expected 5y 0m 0d, got %dy %dm %dd", d.Years, d.Months, d.Days)
	}
}

func TestDurationBetween_MonthBorrow(t *testing.T) {
	// end in January forces the day borrow to reach into December
	start := model.NewDate(2021, time.December, 20)
	end := model.NewDate(2022, time.January, 5)

	d := DurationBetween(start, end)
	if d.Years != 0 || d.Months != 0 || d.Days != 16 {
		t.Errorf("expected 0y 0m 16d, got %dy %dm %dd", d.Years, d.Months, d.Days)
	}
}

func TestAgeOn_EighteenBoundary(t *testing.T) {
	today := Today()

	exactly18 := model.NewDate(today.Year()-18, today.Month(), today.Day())
	if age := AgeOn(exactly18, today); age.Years != 18 {
		t.Errorf("DOB exactly 18 years ago: expected 18, got %d", age.Years)
	}

	oneDayShort := model.Date{Time: exactly18.AddDate(0, 0, 1)}
	if age := AgeOn(oneDayShort, today); age.Years != 17 {
		t.Errorf("DOB one day after the 18-years-ago date: expected 17, got %d", age.Years)
	}
}
