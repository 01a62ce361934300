package service

import (
	"fmt"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
)

// FareService answers catalog and pricing questions. The wizard prices
// drafts through it and the quote command uses it directly.
type FareService struct {
	catalog *domain.Catalog
	policy  domain.FarePolicy
}

func NewFareService(catalog *domain.Catalog, policy domain.FarePolicy) *FareService {
	return &FareService{
		catalog: catalog,
		policy:  policy,
	}
}

type Quote struct {
	Destination domain.Destination
	Passengers  int
	Cost        domain.CostBreakdown
}

func (s *FareService) Destinations() []domain.Destination {
	return s.catalog.List()
}

func (s *FareService) Lookup(city string) (domain.Destination, error) {
	return s.catalog.Lookup(city)
}

func (s *FareService) Policy() domain.FarePolicy {
	return s.policy
}

func (s *FareService) Quote(city string, passengers int) (*Quote, error) {
	dest, err := s.catalog.Lookup(city)
	if err != nil {
		return nil, fmt.Errorf("lookup destination: %w", err)
	}

	if err = domain.ValidatePassengerCount(passengers); err != nil {
		return nil, err
	}

	return &Quote{
		Destination: dest,
		Passengers:  passengers,
		Cost:        s.policy.Quote(dest.BaseFare, passengers),
	}, nil
}
