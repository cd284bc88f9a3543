package types

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Animal is one livestock record. Species selects the variant; Yield holds
// milk (litres/day) for cows and goats and wool (kg/day) for sheep.
type Animal struct {
	ID      int     `json:"id" validate:"gte=0"`
	Species Species `json:"species" validate:"oneof=Cow Goat Sheep"`
	Water   float64 `json:"water" validate:"finite,gte=0"`  // kg/day
	Cost    float64 `json:"cost" validate:"finite"`         // currency/day
	Weight  float64 `json:"weight" validate:"finite,gte=0"` // kg
	Colour  string  `json:"colour"`
	Yield   float64 `json:"yield" validate:"finite,gte=0"`
}

// NewAnimal returns an unsaved animal (ID 0) of the given species.
func NewAnimal(species Species, water, cost, weight float64, colour string, yield float64) Animal {
	return Animal{
		Species: species,
		Water:   water,
		Cost:    cost,
		Weight:  weight,
		Colour:  colour,
		Yield:   yield,
	}
}

// Milk returns the milk yield for cows and goats, 0 for other species.
func (a Animal) Milk() float64 {
	if a.Species == SpeciesCow || a.Species == SpeciesGoat {
		return a.Yield
	}
	return 0
}

// Wool returns the wool yield for sheep, 0 for other species.
func (a Animal) Wool() float64 {
	if a.Species == SpeciesSheep {
		return a.Yield
	}
	return 0
}

// HasColour reports whether the animal's colour equals colour, ignoring case.
func (a Animal) HasColour(colour string) bool {
	return strings.EqualFold(a.Colour, colour)
}

func (a Animal) String() string {
	return fmt.Sprintf("%s ID: %d, Water: %g KG, Cost: $%.2f, Weight: %g KG, Colour: %s, %s: %g",
		a.Species, a.ID, a.Water, a.Cost, a.Weight, a.Colour, a.Species.YieldName(), a.Yield)
}

var validate = newValidator()

// newValidator returns a validator with the "finite" tag, which rejects NaN
// and infinities on float fields.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return IsFinite(fl.Field().Float())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate checks the field rules and returns an error wrapping
// ErrInvalidAnimal that names every failing field.
func (a Animal) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidAnimal, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidAnimal, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ValidateField checks a single candidate value against the rule for the
// named numeric Animal field ("Water", "Cost", "Weight", "Yield"). Every
// field must be finite; all but Cost must also be at least 0.
func ValidateField(field string, value float64) error {
	name := strings.ToLower(field)
	if err := validate.Var(value, "finite"); err != nil {
		return fmt.Errorf("%w: %s must be a finite number", ErrValidation, name)
	}
	switch field {
	case "Water", "Weight", "Yield":
		if err := validate.Var(value, "gte=0"); err != nil {
			return fmt.Errorf("%w: %s must be at least 0", ErrValidation, name)
		}
	}
	return nil
}
