package trip

import (
	"cmp"
	"time"
)

// TripData struct that contains the data of a single trip
// + StartDate: date in which the trip begins
// + EndTime: end of the trip as it appears in the dataset
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds, only meaningful when HasDuration is true
// + UserType: type of user that made the trip
// + Gender: gender of the user, empty if unknown or not present in the dataset
// + BirthYear: birth year of the user, only meaningful when HasBirthYear is true
// + Month, Weekday, Hour: derived from StartDate when the trip is created
// + Raw: the original row of the dataset
type TripData struct {
	StartDate    time.Time `json:"start_date"`
	EndTime      string    `json:"end_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	HasDuration  bool      `json:"has_duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender"`
	BirthYear    int       `json:"birth_year"`
	HasBirthYear bool      `json:"has_birth_year"`
	Month        int       `json:"month"`
	Weekday      string    `json:"weekday"`
	Hour         int       `json:"hour"`
	Raw          []string  `json:"raw"`
}

// NewTripData returns a TripData with the derived calendar fields already set
func NewTripData(startDate time.Time) *TripData {
	return &TripData{
		StartDate: startDate,
		Month:     int(startDate.Month()),
		Weekday:   startDate.Weekday().String(),
		Hour:      startDate.Hour(),
	}
}

// SetDuration sets the duration of the trip in seconds
func (td *TripData) SetDuration(seconds float64) {
	td.Duration = seconds
	td.HasDuration = true
}

// GetStationPair returns the combination of start and end station of the trip
func (td *TripData) GetStationPair() StationPair {
	return StationPair{
		Start: td.StartStation,
		End:   td.EndStation,
	}
}

// StationPair a combination of start and end station
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// String joins both station names with ';'
func (sp StationPair) String() string {
	return sp.Start + ";" + sp.End
}

// CompareStationPairs orders pairs by start station and then by end station
func CompareStationPairs(a StationPair, b StationPair) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}
