// Package wizard implements the multi-step submission wizard: the draft the
// client assembles step by step, the declarative per-step validation rules,
// the field normalization applied before persistence, and the step-index
// state machine with its advancement gating.
package wizard

import (
	"slices"

	"tradie/internal/domain/entity"
)

// Mode distinguishes the create and update flows; a few rules differ
// between the two.
type Mode string

const (
	// ModeCreate is the first-time submission flow.
	ModeCreate Mode = "create"
	// ModeUpdate is the edit flow for an existing record.
	ModeUpdate Mode = "update"
)

// Draft is the client-held, not-yet-persisted form of the record being
// created or edited. It carries the union of listing and business-profile
// fields; each wizard's step rules only ever look at their own subset.
// The pipeline reads a snapshot and never mutates the caller's draft.
type Draft struct {
	// Listing fields
	Category    string
	Title       string
	Description string
	Price       *float64

	// Business profile fields
	BusinessName string
	Email        string
	Mobile       string
	OfficePhone  string
	Website      string
	YearsTrading int
	WorkTypes    []string
	Trades       []string
	Skills       []entity.Skill

	// Shared fields
	Address entity.Address
	Media   []entity.MediaSlot
}

// Clone returns a snapshot of the draft. Slice headers are copied so the
// pipeline can normalize without mutating the caller's draft; media payload
// bytes are shared because nothing in the pipeline writes to them.
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}

	cloned := *d
	if d.Price != nil {
		price := *d.Price
		cloned.Price = &price
	}
	cloned.WorkTypes = slices.Clone(d.WorkTypes)
	cloned.Trades = slices.Clone(d.Trades)
	cloned.Skills = slices.Clone(d.Skills)
	cloned.Media = slices.Clone(d.Media)

	return &cloned
}
