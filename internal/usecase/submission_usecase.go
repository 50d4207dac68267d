// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"
	"fmt"

	"tradie/internal/wizard"

	"github.com/google/uuid"
)

// Stage identifies which part of the submission pipeline a failure came
// from, so the HTTP layer can map it to the right status and payload.
type Stage string

const (
	// StageValidation covers per-field rule failures at submit time.
	StageValidation Stage = "validation"
	// StageOwnership covers missing records and owner mismatches.
	StageOwnership Stage = "ownership"
	// StageUpload covers media transfer failures.
	StageUpload Stage = "upload"
	// StagePersistence covers database failures, including duplicates.
	StagePersistence Stage = "persistence"
)

// StageError is the typed failure a submission returns. Exactly one stage is
// set; FieldErrors is populated only for validation failures.
type StageError struct {
	Stage       Stage
	Message     string
	Err         error
	FieldErrors wizard.FieldErrors
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s stage failed: %s: %v", e.Stage, e.Message, e.Err)
	}

	return fmt.Sprintf("%s stage failed: %s", e.Stage, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is checks.
func (e *StageError) Unwrap() error {
	return e.Err
}

// SubmissionResult reports a successful submission. Geocoded is false when
// the address was blank or the lookup soft-failed; in the latter case
// GeocodingWarning carries the user-facing explanation.
type SubmissionResult struct {
	EntityID         uuid.UUID
	Geocoded         bool
	GeocodingWarning string
}

// ListingSubmission is a submit request for the listing wizard.
// A nil ListingID means create; otherwise it is an edit of that listing.
type ListingSubmission struct {
	ListingID *uuid.UUID
	Draft     *wizard.Draft
	RequestID string
}

// ProfileSubmission is a submit request for the business profile wizard.
// A nil ProfileID means create; otherwise it is an edit of that profile.
type ProfileSubmission struct {
	ProfileID *uuid.UUID
	Draft     *wizard.Draft
	RequestID string
}

// SubmissionUsecase runs the submission pipeline: validate every step,
// check ownership, upload pending media, geocode a changed address, then
// persist and announce the result.
type SubmissionUsecase interface {
	// SubmitListing runs the full pipeline for a listing draft.
	// Failures are returned as *StageError.
	SubmitListing(ctx context.Context, ownerID uuid.UUID, submission *ListingSubmission) (*SubmissionResult, error)

	// SubmitProfile runs the full pipeline for a business profile draft.
	SubmitProfile(ctx context.Context, ownerID uuid.UUID, submission *ProfileSubmission) (*SubmissionResult, error)

	// ValidateListingStep validates a single listing wizard step, for the
	// endpoint the client calls before letting the user advance.
	ValidateListingStep(mode wizard.Mode, stepIndex int, draft *wizard.Draft) wizard.StepResult

	// ValidateProfileStep validates a single profile wizard step.
	ValidateProfileStep(mode wizard.Mode, stepIndex int, draft *wizard.Draft) wizard.StepResult
}
