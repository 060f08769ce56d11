package factory

import (
	"fmt"
	"io"

	"bikeshare/domain/entities/trip"
	"bikeshare/queryhandlers/factory/handler_type/durationhandler"
	"bikeshare/queryhandlers/factory/handler_type/stationhandler"
	"bikeshare/queryhandlers/factory/handler_type/timehandler"
	"bikeshare/queryhandlers/factory/handler_type/userhandler"
)

const (
	TimeHandlerType     = "time-handler"
	StationHandlerType  = "station-handler"
	DurationHandlerType = "duration-handler"
	UserHandlerType     = "user-handler"
)

// HandlerTypes the handlers run on every table, in display order
var HandlerTypes = []string{
	TimeHandlerType,
	StationHandlerType,
	DurationHandlerType,
	UserHandlerType,
}

type Handler interface {
	GetQueryID() string
	GetType() string
	GenerateResponse(table *trip.Table) error
	SendResponse(w io.Writer) error
}

// NewQueryHandler initialize a handler of some type.
// Possible handler types are: time-handler, station-handler, duration-handler, user-handler
func NewQueryHandler(handlerType string) (Handler, error) {
	switch handlerType {
	case TimeHandlerType:
		return timehandler.NewTimeHandler(), nil
	case StationHandlerType:
		return stationhandler.NewStationHandler(), nil
	case DurationHandlerType:
		return durationhandler.NewDurationHandler(), nil
	case UserHandlerType:
		return userhandler.NewUserHandler(), nil
	}

	return nil, fmt.Errorf("[method: NewQueryHandler][status: error] Invalid handler type %s", handlerType)
}

// NewQueryHandlers returns one handler of each type in HandlerTypes
func NewQueryHandlers() []Handler {
	handlers := make([]Handler, 0, len(HandlerTypes))
	for _, handlerType := range HandlerTypes {
		handler, err := NewQueryHandler(handlerType)
		if err != nil {
			panic(err)
		}
		handlers = append(handlers, handler)
	}
	return handlers
}
