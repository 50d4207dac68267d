package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileDraft() *Draft {
	return &Draft{
		BusinessName: "Harbour City Plumbing",
		Description:  "Plumbing and gasfitting across the Wellington region.",
		YearsTrading: 12,
		Email:        "office@harbourcityplumbing.co.nz",
		Mobile:       "021 555 0199",
		Website:      "harbourcityplumbing.co.nz",
		WorkTypes:    []string{"Residential", "Commercial"},
		Trades:       []string{"Plumbing", "Gasfitting"},
	}
}

func validListingDraft() *Draft {
	price := 18500.0

	return &Draft{
		Category:    "vehicle",
		Title:       "2018 Toyota Hilux SR5",
		Description: "One owner, full service history, deck liner and towbar.",
		Price:       &price,
	}
}

func TestValidateStep_ProfileBasicInfo_Valid(t *testing.T) {
	steps := ProfileSteps(ModeCreate)

	result := ValidateStep(steps, 0, validProfileDraft())
	require.True(t, result.Valid)
	assert.Empty(t, result.FieldErrors)
}

func TestValidateStep_YearsTradingOutOfRange(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := validProfileDraft()
	draft.YearsTrading = 150

	result := ValidateStep(steps, 0, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "years_in_trading")
}

func TestValidateStep_YearsTradingZero_CreateVsUpdate(t *testing.T) {
	draft := validProfileDraft()
	draft.YearsTrading = 0

	created := ValidateStep(ProfileSteps(ModeCreate), 0, draft)
	assert.False(t, created.Valid)
	assert.Contains(t, created.FieldErrors, "years_in_trading")

	updated := ValidateStep(ProfileSteps(ModeUpdate), 0, draft)
	assert.True(t, updated.Valid)
}

func TestValidateStep_ContactMethodRequired(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := validProfileDraft()
	draft.Email = ""
	draft.Mobile = "   "
	draft.OfficePhone = ""

	result := ValidateStep(steps, 1, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "contact")
}

func TestValidateStep_OfficePhoneAloneSatisfiesContact(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := validProfileDraft()
	draft.Email = ""
	draft.Mobile = ""
	draft.OfficePhone = "04 555 0100"

	result := ValidateStep(steps, 1, draft)
	assert.True(t, result.Valid)
}

func TestValidateStep_EmailShape(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := validProfileDraft()
	draft.Email = "not-an-email"

	result := ValidateStep(steps, 1, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "email")
}

func TestValidateStep_BareWebsiteIsAccepted(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := validProfileDraft()
	draft.Website = "example.co.nz"

	result := ValidateStep(steps, 1, draft)
	assert.True(t, result.Valid)
}

func TestValidateStep_WebsiteWithSpacesRejected(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := validProfileDraft()
	draft.Website = "my cool site.nz"

	result := ValidateStep(steps, 1, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "website")
}

func TestValidateStep_WorkTypesBlankEntriesDoNotCount(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := validProfileDraft()
	draft.WorkTypes = []string{"  ", "", "\t"}

	result := ValidateStep(steps, 2, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "work_types")
}

func TestValidateStep_WhitespaceOnlyTitleIsEmpty(t *testing.T) {
	steps := ListingSteps(ModeCreate)
	draft := validListingDraft()
	draft.Title = "   "

	result := ValidateStep(steps, 0, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "title")
}

func TestValidateStep_UnknownCategory(t *testing.T) {
	steps := ListingSteps(ModeCreate)
	draft := validListingDraft()
	draft.Category = "spaceship"

	result := ValidateStep(steps, 0, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "category")
}

func TestValidateStep_NegativePrice(t *testing.T) {
	steps := ListingSteps(ModeCreate)
	draft := validListingDraft()
	price := -1.0
	draft.Price = &price

	result := ValidateStep(steps, 0, draft)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "price")
}

func TestValidateStep_NilPriceIsValid(t *testing.T) {
	steps := ListingSteps(ModeCreate)
	draft := validListingDraft()
	draft.Category = "job"
	draft.Price = nil

	result := ValidateStep(steps, 0, draft)
	assert.True(t, result.Valid)
}

func TestValidateStep_RuleFreeStepsAlwaysValid(t *testing.T) {
	steps := ListingSteps(ModeCreate)
	empty := &Draft{}

	assert.True(t, ValidateStep(steps, 1, empty).Valid)
	assert.True(t, ValidateStep(steps, 2, empty).Valid)
	assert.True(t, ValidateStep(steps, 3, empty).Valid)
}

func TestValidateStep_OutOfRangeIndex(t *testing.T) {
	steps := ListingSteps(ModeCreate)

	assert.False(t, ValidateStep(steps, -1, validListingDraft()).Valid)
	assert.False(t, ValidateStep(steps, len(steps), validListingDraft()).Valid)
}

func TestValidateStep_NeverMutatesDraft(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := validProfileDraft()
	before := *draft.Clone()

	_ = ValidateStep(steps, 0, draft)
	_ = ValidateStep(steps, 1, draft)

	assert.Equal(t, before.BusinessName, draft.BusinessName)
	assert.Equal(t, before.Email, draft.Email)
	assert.Equal(t, before.WorkTypes, draft.WorkTypes)
}

func TestValidateAll_MergesErrorsAcrossSteps(t *testing.T) {
	steps := ProfileSteps(ModeCreate)
	draft := &Draft{}

	result := ValidateAll(steps, draft)
	require.False(t, result.Valid)
	assert.Contains(t, result.FieldErrors, "business_name")
	assert.Contains(t, result.FieldErrors, "contact")
	assert.Contains(t, result.FieldErrors, "work_types")
	assert.Contains(t, result.FieldErrors, "trades")
}

func TestValidateAll_ValidDraftPasses(t *testing.T) {
	draft := validProfileDraft()

	result := ValidateAll(ProfileSteps(ModeCreate), draft)
	require.True(t, result.Valid)
	assert.Empty(t, result.FieldErrors)
}
