package overtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysForHours(t *testing.T) {
	assert.Equal(t, 1.0, DaysForHours(8))
	assert.Equal(t, 2.0, DaysForHours(16))
	assert.Equal(t, 0.5, DaysForHours(4))
	assert.Equal(t, 0.0, DaysForHours(0))
}

func TestDaysForHours_FractionalNoRounding(t *testing.T) {
	assert.InDelta(t, 0.375, DaysForHours(3), 1e-9)
	assert.InDelta(t, 1.25, DaysForHours(10), 1e-9)
}
