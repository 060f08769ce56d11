package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const (
	logLevelEnv = "LOG_LEVEL"
	dataDirEnv  = "DATA_DIR"

	defaultLogLevel  = "warn"
	defaultDataDir   = "./datasets"
	defaultPageSize  = 5
	defaultDelimiter = ","
)

var (
	ErrInvalidPageSize  = errors.New("page size must be greater than zero")
	ErrInvalidDelimiter = errors.New("csv delimiter must be a single character")
	ErrNoLayouts        = errors.New("at least one timestamp layout is required")
)

// Columns contains the name of each dataset column to analyze
type Columns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	Duration     string `yaml:"duration"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

type ExplorerConfig struct {
	LogLevel           string   `yaml:"log_level"`
	DataDir            string   `yaml:"data_dir"`
	PageSize           int      `yaml:"page_size"`
	CSVDelimiter       string   `yaml:"csv_delimiter"`
	AffirmativeAnswers []string `yaml:"affirmative_answers"`
	TimestampLayouts   []string `yaml:"timestamp_layouts"`
	Columns            Columns  `yaml:"columns"`
}

func defaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		EndTime:      "End Time",
		StartStation: "Start Station",
		EndStation:   "End Station",
		Duration:     "Trip Duration",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// DefaultConfig returns the configuration used when no config file is given
func DefaultConfig() *ExplorerConfig {
	return &ExplorerConfig{
		LogLevel:           defaultLogLevel,
		DataDir:            defaultDataDir,
		PageSize:           defaultPageSize,
		CSVDelimiter:       defaultDelimiter,
		AffirmativeAnswers: []string{"yes", "y"},
		TimestampLayouts: []string{
			"2006-01-02 15:04:05",
			"2006-01-02 15:04",
			"2006-01-02T15:04:05",
			"1/2/2006 15:04",
		},
		Columns: defaultColumns(),
	}
}

// LoadConfig reads the YAML file at configFilepath, fills the missing keys with
// defaults and applies the environment overrides. An empty path means defaults only.
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	explorerConfig := DefaultConfig()

	if configFilepath != "" {
		configFile, err := utils.GetConfigFile(configFilepath)
		if err != nil {
			return nil, err
		}

		var fileConfig ExplorerConfig
		err = yaml.Unmarshal(configFile, &fileConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing explorer config file: %w", err)
		}
		explorerConfig.merge(fileConfig)
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}
	if dataDir := os.Getenv(dataDirEnv); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}
	return explorerConfig, nil
}

func (ec *ExplorerConfig) merge(other ExplorerConfig) {
	if other.LogLevel != "" {
		ec.LogLevel = other.LogLevel
	}
	if other.DataDir != "" {
		ec.DataDir = other.DataDir
	}
	if other.PageSize != 0 {
		ec.PageSize = other.PageSize
	}
	if other.CSVDelimiter != "" {
		ec.CSVDelimiter = other.CSVDelimiter
	}
	if len(other.AffirmativeAnswers) > 0 {
		ec.AffirmativeAnswers = other.AffirmativeAnswers
	}
	if len(other.TimestampLayouts) > 0 {
		ec.TimestampLayouts = other.TimestampLayouts
	}
	ec.Columns.merge(other.Columns)
}

func (c *Columns) merge(other Columns) {
	setIfNotEmpty(&c.StartTime, other.StartTime)
	setIfNotEmpty(&c.EndTime, other.EndTime)
	setIfNotEmpty(&c.StartStation, other.StartStation)
	setIfNotEmpty(&c.EndStation, other.EndStation)
	setIfNotEmpty(&c.Duration, other.Duration)
	setIfNotEmpty(&c.UserType, other.UserType)
	setIfNotEmpty(&c.Gender, other.Gender)
	setIfNotEmpty(&c.BirthYear, other.BirthYear)
}

func setIfNotEmpty(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func (ec *ExplorerConfig) Validate() error {
	if ec.PageSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, ec.PageSize)
	}
	if utf8.RuneCountInString(ec.CSVDelimiter) != 1 {
		return fmt.Errorf("%w: got %q", ErrInvalidDelimiter, ec.CSVDelimiter)
	}
	if len(ec.TimestampLayouts) == 0 {
		return ErrNoLayouts
	}
	return nil
}

// Delimiter returns the CSV delimiter as a rune
func (ec *ExplorerConfig) Delimiter() rune {
	delimiter, _ := utf8.DecodeRuneInString(ec.CSVDelimiter)
	return delimiter
}
