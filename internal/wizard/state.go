package wizard

import "tradie/internal/errors"

var (
	// ErrStepInvalid is returned when Next is called while the active step
	// still has failing rules.
	ErrStepInvalid = errors.New("current step is not valid")
	// ErrLastStep is returned when Next is called on the final step;
	// submission, not navigation, is the way forward from there.
	ErrLastStep = errors.New("already on the last step")
)

// StepState tracks the wizard's position. The active index can never move
// past a step whose rules fail against the current draft, and moving
// backward is always allowed. StepState carries no draft of its own; it is
// a derived view over whatever draft the caller passes in.
type StepState struct {
	steps  []Step
	active int
}

// NewStepState creates a step state positioned on the first step.
func NewStepState(steps []Step) *StepState {
	return &StepState{steps: steps}
}

// ActiveStep returns the 0-based index of the current step.
func (s *StepState) ActiveStep() int {
	return s.active
}

// StepCount returns the number of declared steps.
func (s *StepState) StepCount() int {
	return len(s.steps)
}

// IsStepValid reports whether the given step's rules all pass against the
// draft.
func (s *StepState) IsStepValid(index int, d *Draft) bool {
	return ValidateStep(s.steps, index, d).Valid
}

// Next advances to the following step, provided the active step is valid
// against the draft and a following step exists.
func (s *StepState) Next(d *Draft) error {
	if !s.IsStepValid(s.active, d) {
		return ErrStepInvalid
	}
	if s.active >= len(s.steps)-1 {
		return ErrLastStep
	}
	s.active++

	return nil
}

// Back moves to the previous step. Moving backward needs no validation.
func (s *StepState) Back() {
	if s.active > 0 {
		s.active--
	}
}
