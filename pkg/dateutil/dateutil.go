package dateutil

import (
	"time"
)

// YearForAge returns the calendar year in which a person who is currentAge in
// currentYear reaches age.
func YearForAge(currentYear, currentAge, age int) int {
	return currentYear + (age - currentAge)
}

// AgeInYear returns the age, in whole years, of a person who is currentAge in
// currentYear when the calendar reaches year.
func AgeInYear(currentYear, currentAge, year int) int {
	return currentAge + (year - currentYear)
}

// CurrentYear returns the calendar year of now in its own location.
func CurrentYear(now time.Time) int {
	return now.Year()
}

// YearsUntil returns the whole years from fromYear to toYear, or 0 when toYear
// is not later.
func YearsUntil(fromYear, toYear int) int {
	if toYear <= fromYear {
		return 0
	}
	return toYear - fromYear
}

// YearRange returns every calendar year from first to last inclusive. It is
// empty when last < first.
func YearRange(first, last int) []int {
	if last < first {
		return nil
	}
	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years
}
