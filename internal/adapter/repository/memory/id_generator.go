package memory

import (
	"github.com/google/uuid"
)

// UUIDGenerator generates random 128-bit trade identifiers.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate generates a new UUID v4.
func (g *UUIDGenerator) Generate() string {
	return uuid.New().String()
}
