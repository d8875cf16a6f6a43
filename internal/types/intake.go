// Package types provides the data contracts shared by the intake, generation, store and
// presentation layers of the proposal studio.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Guest count bands offered by the intake form.
const (
	GuestsMicro    = "Less than 50"
	GuestsIntimate = "50-100"
	GuestsStandard = "100-200"
	GuestsLarge    = "200-300"
	GuestsGrand    = "300+"
)

// Budget bands offered by the intake form.
const (
	Budget20to40   = "$20k - $40k"
	Budget40to70   = "$40k - $70k"
	Budget70to100  = "$70k - $100k"
	Budget100to150 = "$100k - $150k"
	Budget150Plus  = "$150k+"
)

// GuestCountBands lists the accepted guest count bands in display order.
var GuestCountBands = []string{GuestsMicro, GuestsIntimate, GuestsStandard, GuestsLarge, GuestsGrand}

// BudgetBands lists the accepted budget bands in display order.
var BudgetBands = []string{Budget20to40, Budget40to70, Budget70to100, Budget100to150, Budget150Plus}

// VibeTags is the fixed vocabulary clients choose their style keywords from.
var VibeTags = []string{
	"Modern", "Romantic", "Bohemian", "Classic", "Minimalist",
	"Industrial", "Garden", "Vintage", "Glamorous", "Rustic",
	"Ethereal", "Moody", "Coastal", "Traditional",
}

// IntakeData is the questionnaire a client completes at project start.
// It is treated as immutable once submitted.
type IntakeData struct {
	CoupleName string   `json:"coupleName" validate:"required,min=1"`
	Email      string   `json:"email" validate:"required,email"`
	EventDate  string   `json:"eventDate"`
	GuestCount string   `json:"guestCount" validate:"required,guestband"`
	BudgetBand string   `json:"budgetBand" validate:"required,budgetband"`
	Location   string   `json:"location"`
	VibeTags   []string `json:"vibeTags" validate:"required,min=1,unique,dive,vibetag"`
	Notes      string   `json:"notes"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the intake vocabularies registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		mustRegister(v, "guestband", GuestCountBands)
		mustRegister(v, "budgetband", BudgetBands)
		mustRegister(v, "vibetag", VibeTags)
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, allowed []string) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register %s validation: %v", tag, err))
	}
}

// Validate checks that the intake carries everything the generators need.
func (d *IntakeData) Validate() error {
	return Validator().Struct(d)
}

// Clone returns a copy that shares no slices with d.
func (d IntakeData) Clone() IntakeData {
	d.VibeTags = slices.Clone(d.VibeTags)
	return d
}

// IsVibeTag reports whether tag belongs to the vibe vocabulary.
func IsVibeTag(tag string) bool {
	return slices.Contains(VibeTags, tag)
}
