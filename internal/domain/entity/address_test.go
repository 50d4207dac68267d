package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldGeocode_CreateWithAnyComponent(t *testing.T) {
	candidate := Address{City: "Auckland", Region: "Auckland"}

	assert.True(t, ShouldGeocode(nil, candidate))
}

func TestShouldGeocode_CreateWithBlankAddress(t *testing.T) {
	candidate := Address{Street: "  ", PostalCode: ""}

	assert.False(t, ShouldGeocode(nil, candidate))
}

func TestShouldGeocode_UnchangedAddress(t *testing.T) {
	previous := Address{Street: "12 Main St", Suburb: "Te Aro", City: "Wellington", Region: "Wellington", PostalCode: "6011"}
	candidate := previous

	assert.False(t, ShouldGeocode(&previous, candidate))
}

func TestShouldGeocode_SingleComponentChanged(t *testing.T) {
	previous := Address{Street: "12 Main St", Suburb: "Te Aro", City: "Wellington", Region: "Wellington", PostalCode: "6011"}

	candidate := previous
	candidate.PostalCode = "6012"
	assert.True(t, ShouldGeocode(&previous, candidate))
}

func TestShouldGeocode_ComparisonIsExactNotFuzzy(t *testing.T) {
	previous := Address{City: "Wellington"}
	candidate := Address{City: "wellington"}

	assert.True(t, ShouldGeocode(&previous, candidate))
}

func TestFormattedLine_SkipsEmptyComponents(t *testing.T) {
	address := Address{City: "Auckland", Region: "Auckland"}

	assert.Equal(t, "Auckland, Auckland", address.FormattedLine())
}

func TestFormattedLine_TrimsComponents(t *testing.T) {
	address := Address{Street: " 1 Queen St ", City: "Auckland"}

	assert.Equal(t, "1 Queen St, Auckland", address.FormattedLine())
}

func TestNormalized_Idempotent(t *testing.T) {
	address := Address{Street: " 1 Queen St ", City: " Auckland "}

	once := address.Normalized()
	assert.Equal(t, once, once.Normalized())
	assert.Equal(t, "1 Queen St", once.Street)
}
