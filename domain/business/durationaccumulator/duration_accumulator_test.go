package durationaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageDuration(t *testing.T) {
	accumulator := NewDurationAccumulator()
	accumulator.UpdateAccumulator(300)
	accumulator.UpdateAccumulator(600)

	average, err := accumulator.GetAverageDuration()
	require.NoError(t, err)
	assert.Equal(t, 450.0, average)
	assert.Equal(t, 900.0, accumulator.GetTotalDuration())
	assert.Equal(t, 2, accumulator.GetCounter())
}

func TestAverageDurationEmpty(t *testing.T) {
	accumulator := NewDurationAccumulator()

	_, err := accumulator.GetAverageDuration()
	require.ErrorIs(t, err, ErrEmptyAccumulator)
	assert.Zero(t, accumulator.GetTotalDuration())
}
