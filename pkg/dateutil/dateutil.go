package dateutil

import (
	"time"
)

// Age calculates the age in completed years at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the month of the given date
func DaysInMonth(date time.Time) int {
	switch date.Month() {
	case time.February:
		if IsLeapYear(date.Year()) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// StartOfDay truncates a date to midnight in its own location
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// monthAnniversary returns the first day of the k-th month counted from birth.
// When the birth day does not exist in the target month the period rolls over
// to the first day of the following month (Jan 31 -> Mar 1 instead of Feb 31).
func monthAnniversary(birthDate time.Time, k int) time.Time {
	first := time.Date(birthDate.Year(), birthDate.Month()+time.Month(k), 1, 0, 0, 0, 0, birthDate.Location())
	if birthDate.Day() > DaysInMonth(first) {
		return first.AddDate(0, 1, 0)
	}
	return first.AddDate(0, 0, birthDate.Day()-1)
}

// LifeMonth returns the first and last calendar day of the child's month of
// life with the given zero-based index. Index 0 starts on the birth date.
func LifeMonth(birthDate time.Time, index int) (start, end time.Time) {
	start = monthAnniversary(birthDate, index)
	end = monthAnniversary(birthDate, index+1).AddDate(0, 0, -1)
	return start, end
}

// LifeMonthIndex returns the zero-based month of life that contains atDate,
// or -1 when atDate lies before the birth date.
func LifeMonthIndex(birthDate, atDate time.Time) int {
	at := StartOfDay(atDate)
	if at.Before(StartOfDay(birthDate)) {
		return -1
	}
	months := (at.Year()-birthDate.Year())*12 + int(at.Month()) - int(birthDate.Month())
	// The estimate can overshoot by one when the anniversary has not been reached yet.
	for months > 0 && monthAnniversary(birthDate, months).After(at) {
		months--
	}
	return months
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}
