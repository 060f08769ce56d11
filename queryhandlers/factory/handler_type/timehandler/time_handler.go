package timehandler

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "1"
	handlerType = "time-handler"
	title       = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats most frequent times of travel. HasData is false for an empty table.
type TimeStats struct {
	HasData bool   `json:"has_data"`
	Month   string `json:"month"`
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
}

type TimeHandler struct {
	result   TimeStats
	response *queryresponse.QueryResponse
}

func NewTimeHandler() *TimeHandler {
	return &TimeHandler{}
}

func (th *TimeHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (th *TimeHandler) GetQueryID() string {
	return queryID
}

// GetType returns handler type
func (th *TimeHandler) GetType() string {
	return handlerType
}

// GetResult returns the stats computed by the last call to GenerateResponse
func (th *TimeHandler) GetResult() TimeStats {
	return th.result
}

// GenerateResponse computes the most common month, weekday and start hour of the trips
func (th *TimeHandler) GenerateResponse(table *trip.Table) error {
	if table == nil {
		log.Error(th.getLogMessage("GenerateResponse", "cannot generate response", handlerErrors.ErrNilTable))
		return handlerErrors.ErrNilTable
	}
	start := time.Now()

	months := tripcounter.NewTripCounter[int]()
	weekdays := tripcounter.NewTripCounter[string]()
	hours := tripcounter.NewTripCounter[int]()
	for _, tripData := range table.Trips {
		months.UpdateCounter(tripData.Month)
		weekdays.UpdateCounter(tripData.Weekday)
		hours.UpdateCounter(tripData.Hour)
	}

	th.result = TimeStats{}
	response := queryresponse.NewQueryResponse(queryID, title)
	month, _, ok := months.Mode()
	if !ok {
		response.AddLine(queryresponse.NoDataMessage)
	} else {
		weekday, _, _ := weekdays.Mode()
		hour, _, _ := hours.Mode()
		th.result = TimeStats{
			HasData: true,
			Month:   filter.MonthName(month),
			Weekday: weekday,
			Hour:    hour,
		}
		response.AddLine("Most Popular Month: %s", th.result.Month)
		response.AddLine("Most Popular Day: %s", th.result.Weekday)
		response.AddLine("Most Popular Start Hour: %v", th.result.Hour)
	}

	response.SetElapsed(time.Since(start))
	th.response = response
	log.Debug(th.getLogMessage("GenerateResponse", fmt.Sprintf("response generated from %v trips over %v distinct hours", hours.GetTotal(), hours.Len()), nil))
	return nil
}

func (th *TimeHandler) SendResponse(w io.Writer) error {
	if th.response == nil {
		return handlerErrors.ErrResponseNotGenerated
	}
	return th.response.Write(w)
}
