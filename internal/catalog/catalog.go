package catalog

import (
	"fmt"
	"os"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
	"gopkg.in/yaml.v3"
)

var defaultDestinations = []domain.Destination{
	{Name: "Delhi", AirportCode: "DEL", BaseFare: 4500},
	{Name: "Mumbai", AirportCode: "BOM", BaseFare: 5000},
	{Name: "Bangalore", AirportCode: "BLR", BaseFare: 5500},
	{Name: "Chennai", AirportCode: "MAA", BaseFare: 5200},
	{Name: "Kolkata", AirportCode: "CCU", BaseFare: 4800},
	{Name: "Hyderabad", AirportCode: "HYD", BaseFare: 4700},
	{Name: "Goa", AirportCode: "GOI", BaseFare: 6000},
}

type file struct {
	Destinations []domain.Destination `yaml:"destinations"`
}

// Default returns the built-in destinations.
func Default() *domain.Catalog {
	c, err := domain.NewCatalog(defaultDestinations)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// Load reads a YAML catalog from path, or returns the built-in one when path is empty.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*domain.Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c, err := domain.NewCatalog(f.Destinations)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	return c, nil
}
