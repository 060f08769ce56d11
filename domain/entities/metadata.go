package entities

// Metadata this struct contains extra information about a loaded trip table
// + City: city which belongs the data
// + Source: path of the dataset the data was read from
// + SessionID: ID of the session iteration that requested the data
// + HasGender: the dataset header contains a gender column
// + HasBirthYear: the dataset header contains a birth year column
// + DroppedRecords: amount of rows excluded because they could not be parsed
type Metadata struct {
	City           string `json:"city"`
	Source         string `json:"source"`
	SessionID      string `json:"session_id"`
	HasGender      bool   `json:"has_gender"`
	HasBirthYear   bool   `json:"has_birth_year"`
	DroppedRecords int    `json:"dropped_records"`
}

func NewMetadata(city string, source string, sessionID string) Metadata {
	return Metadata{
		City:      city,
		Source:    source,
		SessionID: sessionID,
	}
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetSource() string {
	return m.Source
}

func (m Metadata) GetSessionID() string {
	return m.SessionID
}

func (m Metadata) GetDroppedRecords() int {
	return m.DroppedRecords
}
