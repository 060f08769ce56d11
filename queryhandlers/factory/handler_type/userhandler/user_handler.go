package userhandler

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "4"
	handlerType = "user-handler"
	title       = "Calculating User Stats..."

	noGenderMessage    = "There is no Gender data for this city"
	noBirthYearMessage = "There is no Birth Year data for this city"
)

// BirthYearStats earliest, most recent and most common birth year
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// UserStats demographics of the users. Gender and BirthYear are nil when the
// dataset does not have the column or no trip has a value for it.
type UserStats struct {
	UserTypes          []tripcounter.Entry[string] `json:"user_types"`
	GenderAvailable    bool                        `json:"gender_available"`
	Gender             []tripcounter.Entry[string] `json:"gender"`
	BirthYearAvailable bool                        `json:"birth_year_available"`
	BirthYear          *BirthYearStats             `json:"birth_year"`
}

type UserHandler struct {
	result   UserStats
	response *queryresponse.QueryResponse
}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (uh *UserHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (uh *UserHandler) GetQueryID() string {
	return queryID
}

func (uh *UserHandler) GetType() string {
	return handlerType
}

func (uh *UserHandler) GetResult() UserStats {
	return uh.result
}

// GenerateResponse counts user types and, when the dataset has them, genders and
// birth years. Missing values are not counted.
func (uh *UserHandler) GenerateResponse(table *trip.Table) error {
	if table == nil {
		log.Error(uh.getLogMessage("GenerateResponse", "cannot generate response", handlerErrors.ErrNilTable))
		return handlerErrors.ErrNilTable
	}
	start := time.Now()
	metadata := table.GetMetadata()

	userTypes := tripcounter.NewTripCounter[string]()
	genders := tripcounter.NewTripCounter[string]()
	birthYears := tripcounter.NewTripCounter[int]()
	for _, tripData := range table.Trips {
		if tripData.UserType != "" {
			userTypes.UpdateCounter(tripData.UserType)
		}
		if tripData.Gender != "" {
			genders.UpdateCounter(tripData.Gender)
		}
		if tripData.HasBirthYear {
			birthYears.UpdateCounter(tripData.BirthYear)
		}
	}

	uh.result = UserStats{
		GenderAvailable:    metadata.HasGender,
		BirthYearAvailable: metadata.HasBirthYear,
	}
	response := queryresponse.NewQueryResponse(queryID, title)

	response.AddLine("Counts of User Types:")
	if userTypes.IsEmpty() {
		response.AddLine(queryresponse.NoDataMessage)
	} else {
		uh.result.UserTypes = userTypes.ValueCounts()
		addValueCounts(response, uh.result.UserTypes)
	}
	response.AddLine("")

	if !metadata.HasGender {
		response.AddLine(noGenderMessage)
	} else {
		response.AddLine("Counts of User's Gender:")
		if genders.IsEmpty() {
			response.AddLine(queryresponse.NoDataMessage)
		} else {
			uh.result.Gender = genders.ValueCounts()
			addValueCounts(response, uh.result.Gender)
		}
		response.AddLine("")
	}

	if !metadata.HasBirthYear {
		response.AddLine(noBirthYearMessage)
	} else {
		earliest, mostRecent, ok := birthYears.Range()
		if !ok {
			response.AddLine("Birth Year: %s", queryresponse.NoDataMessage)
		} else {
			mostCommon, _, _ := birthYears.Mode()
			uh.result.BirthYear = &BirthYearStats{
				Earliest:   earliest,
				MostRecent: mostRecent,
				MostCommon: mostCommon,
			}
			response.AddLine("Earliest Birth Year: %v", earliest)
			response.AddLine("Most Recent Birth Year: %v", mostRecent)
			response.AddLine("Most Common Birth Year: %v", mostCommon)
		}
	}

	response.SetElapsed(time.Since(start))
	uh.response = response
	log.Debug(uh.getLogMessage("GenerateResponse", "response generated", nil))
	return nil
}

func (uh *UserHandler) SendResponse(w io.Writer) error {
	if uh.response == nil {
		return handlerErrors.ErrResponseNotGenerated
	}
	return uh.response.Write(w)
}

func addValueCounts(response *queryresponse.QueryResponse, entries []tripcounter.Entry[string]) {
	for _, entry := range entries {
		response.AddLine("%s: %s", entry.Key, humanize.Comma(int64(entry.Count)))
	}
}
