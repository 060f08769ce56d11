package durationaccumulator

import "errors"

var ErrEmptyAccumulator = errors.New("cannot get average duration, counter is zero")

// DurationAccumulator struct that collects the duration of trips
// + Counter: counts the amount of data collected
// + TotalDuration: sum of durations of trips
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetCounter() int {
	return da.Counter
}

func (da *DurationAccumulator) GetTotalDuration() float64 {
	return da.TotalDuration
}

func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, ErrEmptyAccumulator
	}
	return da.TotalDuration / float64(da.Counter), nil
}
