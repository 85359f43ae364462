package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for newly created articles and
// categories. Time-ordered v7 UUIDs keep insertion order roughly sortable;
// v4 is the fallback when the system clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
