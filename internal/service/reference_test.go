package service

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSource int

func (f fixedSource) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestReferenceGenerator_Next_Format(t *testing.T) {
	g := NewReferenceGenerator(rand.New(rand.NewPCG(7, 7)))

	for i := 0; i < 1000; i++ {
		assert.Regexp(t, referenceRegex, g.Next())
	}
}

func TestReferenceGenerator_Next_Bounds(t *testing.T) {
	assert.Equal(t, "FL100000", NewReferenceGenerator(fixedSource(0)).Next())
	assert.Equal(t, "FL999999", NewReferenceGenerator(fixedSource(1<<30)).Next())
}

func TestReferenceGenerator_Next_Deterministic(t *testing.T) {
	a := NewReferenceGenerator(rand.New(rand.NewPCG(42, 1)))
	b := NewReferenceGenerator(rand.New(rand.NewPCG(42, 1)))

	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}
