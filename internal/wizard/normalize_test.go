package wizard

import (
	"testing"

	"tradie/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDraft_TrimsAndLowercases(t *testing.T) {
	draft := &Draft{
		Title:        "  2018 Toyota Hilux  ",
		BusinessName: " Harbour City Plumbing ",
		Email:        "  Office@Example.CO.NZ ",
		Website:      "example.co.nz",
		WorkTypes:    []string{" Residential ", "", "Commercial", "  "},
		Trades:       []string{"Plumbing"},
		Address:      entity.Address{City: " Wellington "},
	}

	normalized := NormalizeDraft(draft)

	assert.Equal(t, "2018 Toyota Hilux", normalized.Title)
	assert.Equal(t, "Harbour City Plumbing", normalized.BusinessName)
	assert.Equal(t, "office@example.co.nz", normalized.Email)
	assert.Equal(t, "https://example.co.nz", normalized.Website)
	assert.Equal(t, []string{"Residential", "Commercial"}, normalized.WorkTypes)
	assert.Equal(t, "Wellington", normalized.Address.City)
}

func TestNormalizeDraft_Idempotent(t *testing.T) {
	draft := &Draft{
		Title:     "  Scaffolding hire ",
		Email:     "Crew@Site.NZ",
		Website:   "site.nz",
		WorkTypes: []string{" Commercial ", ""},
		Skills:    []entity.Skill{{Trade: " Carpentry ", Name: " Framing "}},
	}

	once := NormalizeDraft(draft)
	twice := NormalizeDraft(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeDraft_DoesNotMutateInput(t *testing.T) {
	draft := &Draft{
		Email:   "Office@Example.NZ",
		Website: "example.nz",
	}

	_ = NormalizeDraft(draft)

	assert.Equal(t, "Office@Example.NZ", draft.Email)
	assert.Equal(t, "example.nz", draft.Website)
}

func TestNormalizeDraft_DropsBlankSkills(t *testing.T) {
	draft := &Draft{
		Skills: []entity.Skill{
			{Trade: "Carpentry", Name: "Framing"},
			{Trade: "  ", Name: ""},
			{Name: " Decking "},
		},
	}

	normalized := NormalizeDraft(draft)

	require.Len(t, normalized.Skills, 2)
	assert.Equal(t, entity.Skill{Trade: "Carpentry", Name: "Framing"}, normalized.Skills[0])
	assert.Equal(t, entity.Skill{Name: "Decking"}, normalized.Skills[1])
}

func TestNormalizeURL_PrefixesBareHostOnce(t *testing.T) {
	assert.Equal(t, "https://example.com", NormalizeURL("example.com"))
	assert.Equal(t, "https://example.com", NormalizeURL(NormalizeURL("example.com")))
}

func TestNormalizeURL_KeepsExistingScheme(t *testing.T) {
	assert.Equal(t, "http://legacy.example.com", NormalizeURL("http://legacy.example.com"))
	assert.Equal(t, "https://example.com", NormalizeURL(" https://example.com "))
}

func TestNormalizeURL_EmptyStaysEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeURL("   "))
}
