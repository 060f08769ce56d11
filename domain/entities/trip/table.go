package trip

import "bikeshare/domain/entities"

// Table an ordered collection of trips loaded from a single dataset
// + Metadata: information about the load
// + Header: columns of the dataset, in file order
// + Trips: trips that survived parsing and filtering, in file order
type Table struct {
	Metadata entities.Metadata `json:"metadata"`
	Header   []string          `json:"header"`
	Trips    []*TripData       `json:"trips"`
}

func NewTable(metadata entities.Metadata, header []string) *Table {
	headerCopy := make([]string, len(header))
	copy(headerCopy, header)
	return &Table{
		Metadata: metadata,
		Header:   headerCopy,
	}
}

func (t *Table) GetMetadata() entities.Metadata {
	return t.Metadata
}

func (t *Table) Append(tripData *TripData) {
	t.Trips = append(t.Trips, tripData)
}

func (t *Table) Len() int {
	return len(t.Trips)
}

func (t *Table) IsEmpty() bool {
	return len(t.Trips) == 0
}
