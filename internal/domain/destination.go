package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type Destination struct {
	Name        string `json:"name"         yaml:"name"`
	AirportCode string `json:"airport_code" yaml:"airport_code"`
	BaseFare    int64  `json:"base_fare"    yaml:"base_fare"`
}

// Catalog maps normalized city names to destinations. It is read-only once built.
type Catalog struct {
	entries map[string]Destination
}

// NormalizeCity returns the lookup key for a city name.
func NormalizeCity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func NewCatalog(destinations []Destination) (*Catalog, error) {
	if len(destinations) == 0 {
		return nil, ErrCatalogEmpty
	}

	entries := make(map[string]Destination, len(destinations))
	for _, d := range destinations {
		key := NormalizeCity(d.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: destination name is required", ErrValidation)
		}
		if strings.TrimSpace(d.AirportCode) == "" {
			return nil, fmt.Errorf("%w: airport code is required for %s", ErrValidation, d.Name)
		}
		if d.BaseFare <= 0 {
			return nil, fmt.Errorf("%w: base fare must be positive for %s", ErrValidation, d.Name)
		}
		if _, ok := entries[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDestination, key)
		}

		d.Name = strings.TrimSpace(d.Name)
		d.AirportCode = strings.ToUpper(strings.TrimSpace(d.AirportCode))
		entries[key] = d
	}

	return &Catalog{entries: entries}, nil
}

// Lookup matches the trimmed, lower-cased city against the catalog keys exactly.
func (c *Catalog) Lookup(city string) (Destination, error) {
	key := NormalizeCity(city)
	if key == "" {
		return Destination{}, ErrEmptyInput
	}

	d, ok := c.entries[key]
	if !ok {
		return Destination{}, fmt.Errorf("%w: %q", ErrUnknownDestination, strings.TrimSpace(city))
	}

	return d, nil
}

// List returns all destinations ordered by name.
func (c *Catalog) List() []Destination {
	list := lo.Values(c.entries)
	slices.SortFunc(list, func(a, b Destination) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return list
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
