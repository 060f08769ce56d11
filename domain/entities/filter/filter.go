package filter

import (
	"fmt"
	"strings"
	"time"

	"bikeshare/utils"
)

// All disables filtering on a dimension
const All = "all"

const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
)

var (
	cities = []string{Chicago, NewYorkCity, Washington}
	months = []string{All, "january", "february", "march", "april", "may", "june"}
	days   = []string{All, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	monthNumbers = map[string]int{
		"january":  1,
		"february": 2,
		"march":    3,
		"april":    4,
		"may":      5,
		"june":     6,
	}

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Selection the validated city, month and day used to filter a dataset
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewSelection validates the three tokens and returns the selection built with them
func NewSelection(city string, month string, day string) (Selection, error) {
	validCity, err := ValidateCity(city)
	if err != nil {
		return Selection{}, err
	}

	validMonth, err := ValidateMonth(month)
	if err != nil {
		return Selection{}, err
	}

	validDay, err := ValidateDay(day)
	if err != nil {
		return Selection{}, err
	}

	return Selection{City: validCity, Month: validMonth, Day: validDay}, nil
}

func (s Selection) FiltersMonth() bool {
	return s.Month != All
}

func (s Selection) FiltersDay() bool {
	return s.Day != All
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.City, s.Month, s.Day)
}

func ValidateCity(token string) (string, error) {
	return validate(token, cities, ErrInvalidCity, "cities")
}

func ValidateMonth(token string) (string, error) {
	return validate(token, months, ErrInvalidMonth, "months")
}

func ValidateDay(token string) (string, error) {
	return validate(token, days, ErrInvalidDay, "days")
}

func validate(token string, allowed []string, sentinel error, field string) (string, error) {
	normalized := utils.NormalizeToken(token)
	if !utils.ContainsString(normalized, allowed) {
		return "", fmt.Errorf("%w %q. Valid %s are: %s", sentinel, token, field, strings.Join(allowed, ", "))
	}
	return normalized, nil
}

// MonthNumber returns the calendar number of a month name, January being 1.
// Only the months that can be selected are known.
func MonthNumber(name string) (int, bool) {
	number, ok := monthNumbers[utils.NormalizeToken(name)]
	return number, ok
}

// MonthName returns the display name of a calendar month number
func MonthName(number int) string {
	if number < 1 || number > 12 {
		return ""
	}
	return time.Month(number).String()
}

// ParseDay returns the weekday of a day name
func ParseDay(name string) (time.Weekday, bool) {
	weekday, ok := weekdays[utils.NormalizeToken(name)]
	return weekday, ok
}
