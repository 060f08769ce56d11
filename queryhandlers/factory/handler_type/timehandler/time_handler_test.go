package timehandler

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
)

func newTable(startDates ...time.Time) *trip.Table {
	table := trip.NewTable(entities.NewMetadata("chicago", "", ""), nil)
	for _, startDate := range startDates {
		table.Append(trip.NewTripData(startDate))
	}
	return table
}

func TestMostFrequentTimes(t *testing.T) {
	table := newTable(
		time.Date(2017, time.March, 6, 8, 10, 0, 0, time.UTC),  // Monday
		time.Date(2017, time.March, 13, 8, 40, 0, 0, time.UTC), // Monday
		time.Date(2017, time.June, 2, 17, 0, 0, 0, time.UTC),   // Friday
		time.Date(2017, time.March, 10, 17, 5, 0, 0, time.UTC), // Friday
		time.Date(2017, time.March, 20, 8, 0, 0, 0, time.UTC),  // Monday
	)

	handler := NewTimeHandler()
	require.NoError(t, handler.GenerateResponse(table))
	assert.Equal(t, TimeStats{HasData: true, Month: "March", Weekday: "Monday", Hour: 8}, handler.GetResult())

	var out bytes.Buffer
	require.NoError(t, handler.SendResponse(&out))
	assert.Contains(t, out.String(), "Most Popular Month: March")
	assert.Contains(t, out.String(), "Most Popular Day: Monday")
	assert.Contains(t, out.String(), "Most Popular Start Hour: 8")
}

func TestTimeTieBreak(t *testing.T) {
	table := newTable(
		time.Date(2017, time.February, 3, 17, 0, 0, 0, time.UTC), // Friday
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),   // Monday
	)

	handler := NewTimeHandler()
	require.NoError(t, handler.GenerateResponse(table))
	assert.Equal(t, TimeStats{HasData: true, Month: "January", Weekday: "Friday", Hour: 9}, handler.GetResult())
}

func TestTimeEmptyTable(t *testing.T) {
	handler := NewTimeHandler()
	require.NoError(t, handler.GenerateResponse(newTable()))
	assert.False(t, handler.GetResult().HasData)

	var out bytes.Buffer
	require.NoError(t, handler.SendResponse(&out))
	assert.Contains(t, out.String(), queryresponse.NoDataMessage)
	assert.NotContains(t, out.String(), "Most Popular")
}
