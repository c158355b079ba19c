package validation

import (
	"time"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// DurationBetween computes the exact calendar span from start to end using
// year/month/day borrow arithmetic: a negative day count borrows the
// previous month's length from the end date; a negative month count
// borrows a year.
func DurationBetween(start, end model.Date) model.Duration {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	days := end.Day() - start.Day()

	if days < 0 {
		days += daysInMonth(end.Year(), end.Month()-1)
		months--
	}
	if months < 0 {
		months += 12
		years--
	}

	return model.Duration{Years: years, Months: months, Days: days}
}

// AgeOn computes the age at the given date.
func AgeOn(dob, on model.Date) model.Duration {
	return DurationBetween(dob, on)
}

// Today returns the current date (UTC).
func Today() model.Date {
	now := time.Now().UTC()
	return model.NewDate(now.Year(), now.Month(), now.Day())
}

// daysInMonth returns the day count of the given month.
// Month 0 is normalized to December of the previous year.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
