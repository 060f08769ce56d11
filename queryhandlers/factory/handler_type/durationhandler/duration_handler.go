package durationhandler

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "3"
	handlerType = "duration-handler"
	title       = "Calculating Trip Duration..."
)

// DurationStats total and mean trip duration in seconds. Trips without a duration
// are not counted. HasData is false when no trip has one, in which case Mean is meaningless.
type DurationStats struct {
	HasData bool    `json:"has_data"`
	Total   float64 `json:"total"`
	Mean    float64 `json:"mean"`
}

type DurationHandler struct {
	result   DurationStats
	response *queryresponse.QueryResponse
}

func NewDurationHandler() *DurationHandler {
	return &DurationHandler{}
}

func (dh *DurationHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (dh *DurationHandler) GetQueryID() string {
	return queryID
}

func (dh *DurationHandler) GetType() string {
	return handlerType
}

func (dh *DurationHandler) GetResult() DurationStats {
	return dh.result
}

func (dh *DurationHandler) GenerateResponse(table *trip.Table) error {
	if table == nil {
		log.Error(dh.getLogMessage("GenerateResponse", "cannot generate response", handlerErrors.ErrNilTable))
		return handlerErrors.ErrNilTable
	}
	start := time.Now()

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range table.Trips {
		if tripData.HasDuration {
			accumulator.UpdateAccumulator(tripData.Duration)
		}
	}

	dh.result = DurationStats{}
	response := queryresponse.NewQueryResponse(queryID, title)
	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		if !errors.Is(err, durationaccumulator.ErrEmptyAccumulator) {
			return err
		}
		response.AddLine(queryresponse.NoDataMessage)
	} else {
		dh.result = DurationStats{
			HasData: true,
			Total:   accumulator.GetTotalDuration(),
			Mean:    mean,
		}
		response.AddLine("Total Travel Time: %s seconds", formatSeconds(dh.result.Total))
		response.AddLine("Mean Travel Time: %s seconds", formatSeconds(dh.result.Mean))
	}

	response.SetElapsed(time.Since(start))
	dh.response = response
	log.Debug(dh.getLogMessage("GenerateResponse", "response generated", nil))
	return nil
}

func (dh *DurationHandler) SendResponse(w io.Writer) error {
	if dh.response == nil {
		return handlerErrors.ErrResponseNotGenerated
	}
	return dh.response.Write(w)
}

// formatSeconds rounds to two decimals and adds thousands separators
func formatSeconds(seconds float64) string {
	return humanize.Commaf(math.Round(seconds*100) / 100)
}
