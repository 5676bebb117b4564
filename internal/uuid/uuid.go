// Package uuid hides ID generation behind an interface so tests can pin
// entry IDs to known values.
package uuid

import (
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks github.com/duskmux/wod20/internal/uuid Generator

// Generator produces unique string IDs.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates random v4 UUIDs.
type GoogleUUIDGenerator struct{}

// New returns a fresh UUID string.
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates the default generator.
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
