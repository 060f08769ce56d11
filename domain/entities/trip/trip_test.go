package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities"
)

func TestNewTripDataDerivesCalendarFields(t *testing.T) {
	tripData := NewTripData(time.Date(2017, time.June, 30, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, 6, tripData.Month)
	assert.Equal(t, "Friday", tripData.Weekday)
	assert.Equal(t, 23, tripData.Hour)
}

func TestStationPair(t *testing.T) {
	tripData := NewTripData(time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC))
	tripData.StartStation = "Clark St & Elm St"
	tripData.EndStation = "Wells St & Concord Ln"

	pair := tripData.GetStationPair()
	assert.Equal(t, "Clark St & Elm St;Wells St & Concord Ln", pair.String())

	assert.Negative(t, CompareStationPairs(StationPair{Start: "A", End: "Z"}, StationPair{Start: "B", End: "A"}))
	assert.Negative(t, CompareStationPairs(StationPair{Start: "A", End: "B"}, StationPair{Start: "A", End: "C"}))
	assert.Zero(t, CompareStationPairs(pair, pair))
}

func TestTable(t *testing.T) {
	header := []string{"Start Time", "End Time"}
	table := NewTable(entities.NewMetadata("washington", "washington.csv", "id"), header)
	header[0] = "changed"

	require.True(t, table.IsEmpty())
	table.Append(NewTripData(time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, table.Len())
	assert.False(t, table.IsEmpty())
	assert.Equal(t, "Start Time", table.Header[0])
	assert.Equal(t, "washington.csv", table.GetMetadata().GetSource())
}
