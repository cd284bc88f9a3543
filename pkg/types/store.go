package types

// Store persists animal records. The sqlite backend implements it; the herd
// repository keeps its in-memory collection in step with it.
type Store interface {
	// LoadAll returns every stored animal, species by species in
	// AllSpecies order and each species in storage order.
	LoadAll() ([]Animal, error)

	// InsertAnimal writes a new row for a, which must carry its final ID.
	InsertAnimal(a Animal) error

	// UpdateAnimal overwrites the row stored under originalID with a.
	// Returns an error wrapping ErrNotFound if no such row exists.
	UpdateAnimal(originalID int, a Animal) error

	// DeleteAnimal removes the row for a.
	DeleteAnimal(a Animal) error
}
