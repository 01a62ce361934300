package service

import (
	"fmt"

	"github.com/u23ai071-IshatS/HCI-Assignments/internal/domain"
	"github.com/u23ai071-IshatS/HCI-Assignments/internal/service/ports"
)

const (
	referenceMin = 100000
	referenceMax = 999999
)

// ReferenceGenerator issues "FL" + six digit references. There is no
// uniqueness check; two sessions can draw the same number.
type ReferenceGenerator struct {
	src ports.RandomSource
}

func NewReferenceGenerator(src ports.RandomSource) *ReferenceGenerator {
	return &ReferenceGenerator{src: src}
}

func (g *ReferenceGenerator) Next() string {
	n := referenceMin + g.src.IntN(referenceMax-referenceMin+1)
	return fmt.Sprintf("%s%d", domain.ReferencePrefix, n)
}
