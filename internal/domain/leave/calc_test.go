package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDaysInclusive_SingleDay(t *testing.T) {
	d := date("2024-03-15")
	assert.Equal(t, 1, DaysInclusive(d, d))
}

func TestDaysInclusive_MultiDay(t *testing.T) {
	assert.Equal(t, 5, DaysInclusive(date("2024-01-01"), date("2024-01-05")))
	assert.Equal(t, 2, DaysInclusive(date("2024-01-31"), date("2024-02-01")))
	assert.Equal(t, 31, DaysInclusive(date("2024-01-01"), date("2024-01-31")))
}

func TestDaysInclusive_AcrossYearBoundary(t *testing.T) {
	assert.Equal(t, 3, DaysInclusive(date("2023-12-31"), date("2024-01-02")))
}

func TestDaysInclusive_LeapDay(t *testing.T) {
	// 2024 is a leap year: Feb 28, 29, Mar 1.
	assert.Equal(t, 3, DaysInclusive(date("2024-02-28"), date("2024-03-01")))
}
