package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/registry"
	"bikeshare/utils"
)

var nanValues = []string{"", "NA", "NaN", "<nil>"}

// columnIndexes contains the index of each field to analyze. Optional
// columns that are not in the dataset have index -1.
type columnIndexes struct {
	StartTime    int
	EndTime      int
	StartStation int
	EndStation   int
	Duration     int
	UserType     int
	Gender       int
	BirthYear    int
}

type Loader struct {
	registry *registry.Registry
	config   *config.ExplorerConfig
}

func NewLoader(datasetRegistry *registry.Registry, explorerConfig *config.ExplorerConfig) *Loader {
	return &Loader{
		registry: datasetRegistry,
		config:   explorerConfig,
	}
}

func (l *Loader) getLogMessage(sessionID string, city string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[session: %s][city: %s][method: Load][status: ERROR] %s: %s", sessionID, city, message, err.Error())
	}
	return fmt.Sprintf("[session: %s][city: %s][method: Load][status: OK] %s", sessionID, city, message)
}

// Load reads the dataset of the selected city and keeps the trips that match the
// selected month and day. Rows that cannot be parsed are dropped and counted in the
// table metadata. An empty table is a valid result.
func (l *Loader) Load(selection filter.Selection, sessionID string) (*trip.Table, error) {
	datasetPath, err := l.registry.Resolve(selection.City)
	if err != nil {
		return nil, err
	}

	dataFile, err := os.Open(datasetPath)
	if err != nil {
		log.Error(l.getLogMessage(sessionID, selection.City, "error opening dataset", err))
		return nil, fmt.Errorf("%w: %s: %s", ErrDatasetNotFound, datasetPath, err.Error())
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", datasetPath, err.Error())
		}
	}(dataFile)

	header, rows, err := l.readRows(dataFile)
	if err != nil {
		log.Error(l.getLogMessage(sessionID, selection.City, "error parsing dataset", err))
		return nil, fmt.Errorf("%w: %s: %s", ErrDatasetUnreadable, datasetPath, err.Error())
	}

	indexes, err := l.getColumnIndexes(header)
	if err != nil {
		log.Error(l.getLogMessage(sessionID, selection.City, "invalid dataset header", err))
		return nil, fmt.Errorf("%s: %w", datasetPath, err)
	}

	metadata := entities.NewMetadata(selection.City, datasetPath, sessionID)
	metadata.HasGender = indexes.Gender >= 0
	metadata.HasBirthYear = indexes.BirthYear >= 0
	table := trip.NewTable(metadata, header)

	records, err := l.getRecords(header, rows, table, sessionID)
	if err != nil {
		log.Error(l.getLogMessage(sessionID, selection.City, "error parsing dataset", err))
		return nil, fmt.Errorf("%w: %s: %s", ErrDatasetUnreadable, datasetPath, err.Error())
	}

	monthNumber, _ := filter.MonthNumber(selection.Month)
	weekday, _ := filter.ParseDay(selection.Day)

	for rowIdx, record := range records {
		tripData, err := l.getTripData(record, indexes)
		if err != nil {
			if errors.Is(err, ErrMalformedRecord) {
				table.Metadata.DroppedRecords += 1
				log.Debugf("[session: %s][city: %s] dropping row %v: %s", sessionID, selection.City, rowIdx, err.Error())
				continue
			}
			return nil, err
		}

		if selection.FiltersMonth() && tripData.Month != monthNumber {
			continue
		}

		if selection.FiltersDay() && tripData.Weekday != weekday.String() {
			continue
		}

		table.Append(tripData)
	}

	log.Info(l.getLogMessage(sessionID, selection.City, fmt.Sprintf("loaded %v trips (%s), %v rows dropped", table.Len(), selection, table.Metadata.DroppedRecords), nil))
	return table, nil
}

// readRows reads the header and every row of the dataset. Rows may have a different
// amount of fields than the header; getRecords drops them.
func (l *Loader) readRows(dataFile io.Reader) ([]string, [][]string, error) {
	csvReader := csv.NewReader(dataFile)
	csvReader.Comma = l.config.Delimiter()
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, errEmptyDataset
	}

	header := make([]string, 0, len(rows[0]))
	for _, name := range rows[0] {
		header = append(header, strings.TrimSpace(name))
	}
	return header, rows[1:], nil
}

// getRecords loads the rows that have as many fields as the header into a dataframe
// and returns its records without the header. The other rows are counted as dropped
// in the table metadata. A dataset with no rows left returns no records.
func (l *Loader) getRecords(header []string, rows [][]string, table *trip.Table, sessionID string) ([][]string, error) {
	wellFormed := make([][]string, 0, len(rows)+1)
	wellFormed = append(wellFormed, header)
	for rowIdx, row := range rows {
		if len(row) != len(header) {
			table.Metadata.DroppedRecords += 1
			log.Debugf("[session: %s][city: %s] dropping row %v: %s: got %v fields, want %v", sessionID, table.Metadata.City, rowIdx, ErrMalformedRecord, len(row), len(header))
			continue
		}
		wellFormed = append(wellFormed, row)
	}

	if len(wellFormed) == 1 {
		return nil, nil
	}

	df := dataframe.LoadRecords(
		wellFormed,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	return df.Records()[1:], nil
}

func (l *Loader) getColumnIndexes(header []string) (columnIndexes, error) {
	positions := make(map[string]int, len(header))
	for idx, name := range header {
		positions[strings.TrimSpace(name)] = idx
	}

	columns := l.config.Columns
	var missing []string
	required := func(name string) int {
		idx, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return idx
	}
	optional := func(name string) int {
		idx, ok := positions[name]
		if !ok {
			return -1
		}
		return idx
	}

	indexes := columnIndexes{
		StartTime:    required(columns.StartTime),
		EndTime:      required(columns.EndTime),
		StartStation: required(columns.StartStation),
		EndStation:   required(columns.EndStation),
		Duration:     required(columns.Duration),
		UserType:     required(columns.UserType),
		Gender:       optional(columns.Gender),
		BirthYear:    optional(columns.BirthYear),
	}

	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return indexes, nil
}

func (l *Loader) getTripData(record []string, indexes columnIndexes) (*trip.TripData, error) {
	startDate, err := l.parseTimestamp(record[indexes.StartTime])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedRecord, err.Error())
	}

	tripData := trip.NewTripData(startDate)
	durationStr := valueOrEmpty(record[indexes.Duration])
	if durationStr != "" {
		duration, err := strconv.ParseFloat(durationStr, 64)
		if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
			log.Debugf("%s %q", ErrInvalidDuration, durationStr)
		} else {
			tripData.SetDuration(duration)
		}
	}

	tripData.EndTime = valueOrEmpty(record[indexes.EndTime])
	tripData.StartStation = valueOrEmpty(record[indexes.StartStation])
	tripData.EndStation = valueOrEmpty(record[indexes.EndStation])
	tripData.UserType = valueOrEmpty(record[indexes.UserType])
	tripData.Raw = append([]string(nil), record...)

	if indexes.Gender >= 0 {
		tripData.Gender = valueOrEmpty(record[indexes.Gender])
	}

	if indexes.BirthYear >= 0 {
		birthYearStr := valueOrEmpty(record[indexes.BirthYear])
		if birthYearStr != "" {
			birthYear, err := strconv.ParseFloat(birthYearStr, 64)
			if err != nil {
				log.Debugf("Invalid birth year: %v", birthYearStr)
			} else {
				tripData.BirthYear = int(birthYear)
				tripData.HasBirthYear = true
			}
		}
	}

	return tripData, nil
}

func (l *Loader) parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if utils.IsMissing(value) {
		return time.Time{}, fmt.Errorf("%w: empty start time", ErrInvalidDate)
	}

	for _, layout := range l.config.TimestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func valueOrEmpty(value string) string {
	if utils.IsMissing(value) {
		return ""
	}
	return strings.TrimSpace(value)
}
