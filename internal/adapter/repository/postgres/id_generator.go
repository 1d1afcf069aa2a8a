package postgres

import (
	"github.com/oklog/ulid/v2"
)

// idLength matches the fixed length the domain id type enforces.
const idLength = 21

// ULIDGenerator generates ULID-based 21 character IDs. A full ULID is 26
// characters; the trailing five random characters are dropped, keeping the
// sortable timestamp prefix and 11 characters of entropy.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new id.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()[:idLength]
}
