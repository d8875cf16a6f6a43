// Package intake implements the three-step client questionnaire.
//
// Step 1 collects the basics (couple name, email, date, location), step 2 the logistics
// (guest count and budget bands) and step 3 the style (vibe tags and notes). A step can only be
// left forwards once its required answers are present.
package intake

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/proposal-studio/internal/types"
)

// Step is a position in the questionnaire.
type Step int

// Questionnaire steps.
const (
	StepBasics Step = iota + 1
	StepLogistics
	StepStyle
)

// Steps is the number of steps in the questionnaire.
const Steps = 3

func (s Step) String() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepLogistics:
		return "logistics"
	case StepStyle:
		return "style"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Title returns the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepBasics:
		return "The Basics"
	case StepLogistics:
		return "Logistics"
	case StepStyle:
		return "Your Style"
	default:
		return ""
	}
}

var (
	// ErrStepIncomplete is returned by Next when the current step's required answers are missing.
	ErrStepIncomplete = errors.New("current step is incomplete")
	// ErrNotFinalStep is returned by Submit before the style step is reached.
	ErrNotFinalStep = errors.New("intake can only be submitted from the final step")
	// ErrLastStep is returned by Next on the final step.
	ErrLastStep = errors.New("already on the final step")
	// ErrUnknownTag is returned by ToggleTag for tags outside the vibe vocabulary.
	ErrUnknownTag = errors.New("unknown vibe tag")
)

// Collector accumulates answers across steps. The zero value is not usable; call NewCollector.
type Collector struct {
	step Step
	data types.IntakeData
}

// NewCollector starts a questionnaire at step 1.
func NewCollector() *Collector {
	return &Collector{step: StepBasics, data: types.IntakeData{VibeTags: []string{}}}
}

// Step returns the current step.
func (c *Collector) Step() Step {
	return c.step
}

// SetBasics records the step 1 answers.
func (c *Collector) SetBasics(coupleName, email, eventDate, location string) {
	c.data.CoupleName = strings.TrimSpace(coupleName)
	c.data.Email = strings.TrimSpace(email)
	c.data.EventDate = strings.TrimSpace(eventDate)
	c.data.Location = strings.TrimSpace(location)
}

// SetLogistics records the step 2 answers.
func (c *Collector) SetLogistics(guestCount, budgetBand string) {
	c.data.GuestCount = strings.TrimSpace(guestCount)
	c.data.BudgetBand = strings.TrimSpace(budgetBand)
}

// SetNotes records free-text notes.
func (c *Collector) SetNotes(notes string) {
	c.data.Notes = strings.TrimSpace(notes)
}

// ToggleTag adds tag if it is not selected and removes it otherwise.
func (c *Collector) ToggleTag(tag string) error {
	if !types.IsVibeTag(tag) {
		return fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	if i := slices.Index(c.data.VibeTags, tag); i >= 0 {
		c.data.VibeTags = slices.Delete(c.data.VibeTags, i, i+1)
		return nil
	}
	c.data.VibeTags = append(c.data.VibeTags, tag)
	return nil
}

// Tags returns the selected vibe tags in selection order.
func (c *Collector) Tags() []string {
	return slices.Clone(c.data.VibeTags)
}

// CanAdvance reports whether the current step's gate passes.
func (c *Collector) CanAdvance() bool {
	switch c.step {
	case StepBasics:
		return c.data.CoupleName != "" && c.data.Email != ""
	case StepLogistics:
		return c.data.GuestCount != "" && c.data.BudgetBand != ""
	default:
		return false
	}
}

// Next moves to the following step.
func (c *Collector) Next() error {
	if c.step == StepStyle {
		return ErrLastStep
	}
	if !c.CanAdvance() {
		return fmt.Errorf("%w: %s", ErrStepIncomplete, c.step)
	}
	c.step++
	return nil
}

// Back returns to the previous step. It reports false on step 1.
func (c *Collector) Back() bool {
	if c.step == StepBasics {
		return false
	}
	c.step--
	return true
}

// Submit returns the completed intake. It requires the final step and at least one tag,
// and the result must pass IntakeData.Validate.
func (c *Collector) Submit() (types.IntakeData, error) {
	if c.step != StepStyle {
		return types.IntakeData{}, ErrNotFinalStep
	}
	if len(c.data.VibeTags) == 0 {
		return types.IntakeData{}, fmt.Errorf("%w: select at least one vibe tag", ErrStepIncomplete)
	}
	data := c.data.Clone()
	if err := data.Validate(); err != nil {
		return types.IntakeData{}, err
	}
	return data, nil
}
