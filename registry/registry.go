package registry

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"bikeshare/domain/entities/filter"
)

var ErrUnknownCity = errors.New("unknown city")

var cityDatasets = map[string]string{
	filter.Chicago:     "chicago.csv",
	filter.NewYorkCity: "new_york_city.csv",
	filter.Washington:  "washington.csv",
}

// Registry maps each city to the dataset file that holds its trips.
// It does not change once created.
type Registry struct {
	dataDir  string
	datasets map[string]string
}

func New(dataDir string) *Registry {
	datasets := make(map[string]string, len(cityDatasets))
	for city, filename := range cityDatasets {
		datasets[city] = filename
	}

	return &Registry{
		dataDir:  dataDir,
		datasets: datasets,
	}
}

// Resolve returns the path of the dataset of city
func (r *Registry) Resolve(city string) (string, error) {
	filename, ok := r.datasets[city]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	return filepath.Join(r.dataDir, filename), nil
}

func (r *Registry) Cities() []string {
	cities := make([]string, 0, len(r.datasets))
	for city := range r.datasets {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

func (r *Registry) GetDataDir() string {
	return r.dataDir
}
