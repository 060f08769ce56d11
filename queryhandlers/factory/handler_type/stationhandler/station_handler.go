package stationhandler

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "2"
	handlerType = "station-handler"
	title       = "Calculating The Most Popular Stations and Trip..."
)

// StationStats most popular stations. Pairs are counted as (start, end) keys, the
// ';' join is only used to display them. Trips without a station name are not counted.
type StationStats struct {
	HasData      bool             `json:"has_data"`
	StartStation string           `json:"start_station"`
	EndStation   string           `json:"end_station"`
	Pair         trip.StationPair `json:"pair"`
	PairCount    int              `json:"pair_count"`
}

type StationHandler struct {
	result   StationStats
	response *queryresponse.QueryResponse
}

func NewStationHandler() *StationHandler {
	return &StationHandler{}
}

func (sh *StationHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (sh *StationHandler) GetQueryID() string {
	return queryID
}

func (sh *StationHandler) GetType() string {
	return handlerType
}

func (sh *StationHandler) GetResult() StationStats {
	return sh.result
}

func (sh *StationHandler) GenerateResponse(table *trip.Table) error {
	if table == nil {
		log.Error(sh.getLogMessage("GenerateResponse", "cannot generate response", handlerErrors.ErrNilTable))
		return handlerErrors.ErrNilTable
	}
	start := time.Now()

	startStations := tripcounter.NewTripCounter[string]()
	endStations := tripcounter.NewTripCounter[string]()
	pairs := tripcounter.NewTripCounterFunc[trip.StationPair](trip.CompareStationPairs)
	for _, tripData := range table.Trips {
		if tripData.StartStation != "" {
			startStations.UpdateCounter(tripData.StartStation)
		}
		if tripData.EndStation != "" {
			endStations.UpdateCounter(tripData.EndStation)
		}
		if tripData.StartStation != "" && tripData.EndStation != "" {
			pairs.UpdateCounter(tripData.GetStationPair())
		}
	}

	sh.result = StationStats{}
	response := queryresponse.NewQueryResponse(queryID, title)
	if table.IsEmpty() {
		response.AddLine(queryresponse.NoDataMessage)
	} else {
		sh.result.HasData = true
		response.AddLine("Most Popular Start Station: %s", modeOrNoData(startStations, &sh.result.StartStation))
		response.AddLine("Most Popular End Station: %s", modeOrNoData(endStations, &sh.result.EndStation))

		pairText := queryresponse.NoDataMessage
		if pair, pairCount, ok := pairs.Mode(); ok {
			sh.result.Pair = pair
			sh.result.PairCount = pairCount
			pairText = pair.String()
		}
		response.AddLine("The most popular combination of start and end stations is: %s", pairText)
	}

	response.SetElapsed(time.Since(start))
	sh.response = response
	log.Debug(sh.getLogMessage("GenerateResponse", fmt.Sprintf("response generated, %v trips from the most popular start station", startStations.GetCounter(sh.result.StartStation)), nil))
	return nil
}

// modeOrNoData stores the most popular station in target and returns the text to display
func modeOrNoData(stations *tripcounter.TripCounter[string], target *string) string {
	station, _, ok := stations.Mode()
	if !ok {
		return queryresponse.NoDataMessage
	}
	*target = station
	return station
}

func (sh *StationHandler) SendResponse(w io.Writer) error {
	if sh.response == nil {
		return handlerErrors.ErrResponseNotGenerated
	}
	return sh.response.Write(w)
}
