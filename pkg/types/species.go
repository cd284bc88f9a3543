package types

import (
	"fmt"
	"strings"
)

// Species tags an Animal variant. The value is also the storage table name.
type Species string

// Known species.
const (
	SpeciesCow   Species = "Cow"
	SpeciesGoat  Species = "Goat"
	SpeciesSheep Species = "Sheep"
)

// AllSpecies lists every species in load order.
var AllSpecies = []Species{
	SpeciesCow,
	SpeciesGoat,
	SpeciesSheep,
}

// ParseSpecies matches s case-insensitively against the known species.
// Returns ErrInvalidSpecies if nothing matches.
func ParseSpecies(s string) (Species, error) {
	for _, sp := range AllSpecies {
		if strings.EqualFold(string(sp), strings.TrimSpace(s)) {
			return sp, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: Cow, Goat, Sheep)", ErrInvalidSpecies, s)
}

// YieldName returns the name of the species-specific yield column.
func (s Species) YieldName() string {
	if s == SpeciesSheep {
		return "Wool"
	}
	return "Milk"
}

// YieldUnit returns the unit of the species-specific yield.
func (s Species) YieldUnit() string {
	if s == SpeciesSheep {
		return "KG"
	}
	return "L"
}

func (s Species) String() string {
	return string(s)
}
