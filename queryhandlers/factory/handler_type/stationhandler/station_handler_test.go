package stationhandler

import (
	"bytes"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

func newTable(stations [][2]string) *trip.Table {
	table := trip.NewTable(entities.NewMetadata("chicago", "", ""), nil)
	start := time.Date(2017, time.January, 1, 8, 0, 0, 0, time.UTC)
	for i, pair := range stations {
		tripData := trip.NewTripData(start.Add(time.Duration(i) * time.Hour))
		tripData.StartStation = pair[0]
		tripData.EndStation = pair[1]
		table.Append(tripData)
	}
	return table
}

// referencePopularPair counts the joined pair strings directly
func referencePopularPair(stations [][2]string) (string, int) {
	counts := make(map[string]int)
	for _, pair := range stations {
		counts[pair[0]+";"+pair[1]] += 1
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	best, bestCount := "", 0
	for _, key := range keys {
		if counts[key] > bestCount {
			best, bestCount = key, counts[key]
		}
	}
	return best, bestCount
}

func TestPopularPairMatchesReference(t *testing.T) {
	stations := [][2]string{
		{"Canal St & Adams St", "Clinton St & Madison St"},
		{"Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St"},
		{"Canal St & Adams St", "Clinton St & Madison St"},
		{"Lake Shore Dr & Monroe St", "Streeter Dr & Grand Ave"},
		{"Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St"},
		{"Clinton St & Madison St", "Canal St & Adams St"},
		{"Streeter Dr & Grand Ave", "Streeter Dr & Grand Ave"},
		{"Canal St & Adams St", "Clinton St & Madison St"},
		{"Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St"},
		{"Millennium Park", "Streeter Dr & Grand Ave"},
	}

	handler := NewStationHandler()
	require.NoError(t, handler.GenerateResponse(newTable(stations)))
	result := handler.GetResult()

	expectedPair, expectedCount := referencePopularPair(stations)
	require.True(t, result.HasData)
	assert.Equal(t, expectedPair, result.Pair.String())
	assert.Equal(t, expectedCount, result.PairCount)
	assert.Equal(t, "Streeter Dr & Grand Ave", result.StartStation)
	assert.Equal(t, "Clinton St & Madison St", result.EndStation)
}

func TestStationTieBreak(t *testing.T) {
	handler := NewStationHandler()
	require.NoError(t, handler.GenerateResponse(newTable([][2]string{
		{"StationA", "StationB"},
		{"StationB", "StationA"},
	})))

	result := handler.GetResult()
	assert.Equal(t, "StationA", result.StartStation)
	assert.Equal(t, "StationA", result.EndStation)
	assert.Equal(t, trip.StationPair{Start: "StationA", End: "StationB"}, result.Pair)
	assert.Equal(t, 1, result.PairCount)
}

func TestPairsWithSemicolonInNamesStayApart(t *testing.T) {
	handler := NewStationHandler()
	require.NoError(t, handler.GenerateResponse(newTable([][2]string{
		{"A;B", "C"},
		{"A", "B;C"},
		{"A", "B;C"},
	})))

	assert.Equal(t, trip.StationPair{Start: "A", End: "B;C"}, handler.GetResult().Pair)
	assert.Equal(t, 2, handler.GetResult().PairCount)
}

func TestStationsWithoutNameAreNotCounted(t *testing.T) {
	handler := NewStationHandler()
	require.NoError(t, handler.GenerateResponse(newTable([][2]string{
		{"", "StationB"},
		{"", "StationB"},
		{"", ""},
		{"StationC", ""},
		{"StationC", "StationB"},
	})))

	result := handler.GetResult()
	require.True(t, result.HasData)
	assert.Equal(t, "StationC", result.StartStation)
	assert.Equal(t, "StationB", result.EndStation)
	assert.Equal(t, trip.StationPair{Start: "StationC", End: "StationB"}, result.Pair)
	assert.Equal(t, 1, result.PairCount)

	require.NoError(t, handler.GenerateResponse(newTable([][2]string{{"", ""}})))
	var out bytes.Buffer
	require.NoError(t, handler.SendResponse(&out))
	assert.Contains(t, out.String(), "Most Popular Start Station: "+queryresponse.NoDataMessage)
	assert.Contains(t, out.String(), "stations is: "+queryresponse.NoDataMessage)
	assert.Empty(t, handler.GetResult().StartStation)
}

func TestStationResponse(t *testing.T) {
	handler := NewStationHandler()
	var out bytes.Buffer
	require.ErrorIs(t, handler.SendResponse(&out), handlerErrors.ErrResponseNotGenerated)

	require.NoError(t, handler.GenerateResponse(newTable([][2]string{{"StationA", "StationB"}})))
	require.NoError(t, handler.SendResponse(&out))

	text := out.String()
	assert.Contains(t, text, "Most Popular Start Station: StationA")
	assert.Contains(t, text, "Most Popular End Station: StationB")
	assert.Contains(t, text, "The most popular combination of start and end stations is: StationA;StationB")
	assert.Contains(t, text, "This took")
}

func TestStationEmptyTable(t *testing.T) {
	handler := NewStationHandler()
	require.NoError(t, handler.GenerateResponse(newTable(nil)))
	assert.False(t, handler.GetResult().HasData)

	var out bytes.Buffer
	require.NoError(t, handler.SendResponse(&out))
	assert.True(t, strings.Contains(out.String(), queryresponse.NoDataMessage))

	require.ErrorIs(t, handler.GenerateResponse(nil), handlerErrors.ErrNilTable)
}
