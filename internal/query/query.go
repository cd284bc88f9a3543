// Package query filters a loaded animal collection. Every function is a pure
// transformation over the slice it is given.
package query

import (
	"strings"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// ByID returns the animal with identifier id.
func ByID(animals []types.Animal, id int) (types.Animal, bool) {
	for _, a := range animals {
		if a.ID == id {
			return a, true
		}
	}
	return types.Animal{}, false
}

// ByColour returns the animals whose colour equals colour, ignoring case.
func ByColour(animals []types.Animal, colour string) []types.Animal {
	return filter(animals, func(a types.Animal) bool { return a.HasColour(colour) })
}

// ByType returns the animals whose species tag equals name, ignoring case.
// An unknown name matches nothing.
func ByType(animals []types.Animal, name string) []types.Animal {
	name = strings.TrimSpace(name)
	return filter(animals, func(a types.Animal) bool { return strings.EqualFold(string(a.Species), name) })
}

// ByWeightAbove returns the animals heavier than threshold. A threshold of
// zero or less, NaN or an infinity is rejected with ErrInvalidThreshold.
func ByWeightAbove(animals []types.Animal, threshold float64) ([]types.Animal, error) {
	if threshold <= 0 || !types.IsFinite(threshold) {
		return nil, types.ErrInvalidThreshold
	}
	return filter(animals, func(a types.Animal) bool { return a.Weight > threshold }), nil
}

func filter(animals []types.Animal, keep func(types.Animal) bool) []types.Animal {
	var out []types.Animal
	for _, a := range animals {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
