// Package herd owns the in-memory livestock collection for one process run
// and keeps it in step with a types.Store. Every mutation is written to the
// store first and applied to memory only after the write succeeds.
package herd

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// Repository is the authoritative in-memory animal collection.
type Repository struct {
	store   types.Store
	animals []types.Animal
	log     *zap.Logger
}

// Load reads every animal from store and returns a repository holding them.
// A nil logger discards log output.
func Load(store types.Store, log *zap.Logger) (*Repository, error) {
	if log == nil {
		log = zap.NewNop()
	}
	animals, err := store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load animals: %w", err)
	}
	return &Repository{store: store, animals: animals, log: log.Named("herd")}, nil
}

// Len returns the number of animals in the collection.
func (r *Repository) Len() int {
	return len(r.animals)
}

// All returns a copy of the collection in load and insert order.
func (r *Repository) All() []types.Animal {
	return slices.Clone(r.animals)
}

// Sorted returns a copy of the collection ordered by ID.
func (r *Repository) Sorted() []types.Animal {
	out := slices.Clone(r.animals)
	slices.SortStableFunc(out, func(a, b types.Animal) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// NextID returns 1 for an empty collection, otherwise one more than the
// largest identifier in existing.
func NextID(existing []types.Animal) int {
	if len(existing) == 0 {
		return 1
	}
	maxID := existing[0].ID
	for _, a := range existing[1:] {
		maxID = max(maxID, a.ID)
	}
	return maxID + 1
}

// Insert validates a, assigns it the next identifier and persists it. The
// animal joins the collection only after the store accepts the write.
func (r *Repository) Insert(a types.Animal) (types.Animal, error) {
	if err := a.Validate(); err != nil {
		return types.Animal{}, err
	}

	a.ID = NextID(r.animals)
	if err := r.store.InsertAnimal(a); err != nil {
		r.log.Warn("insert failed", zap.String("species", a.Species.String()), zap.Error(err))
		return types.Animal{}, err
	}

	r.animals = append(r.animals, a)
	r.log.Info("inserted", zap.String("species", a.Species.String()), zap.Int("id", a.ID))
	return a, nil
}

// FieldRejection records one edited field that failed validation and kept
// its previous value.
type FieldRejection struct {
	Field string
	Err   error
}

func (f FieldRejection) Error() string {
	return fmt.Sprintf("%s: %v", f.Field, f.Err)
}

func (f FieldRejection) Unwrap() error {
	return f.Err
}

// UpdateResult is the outcome of Update.
type UpdateResult struct {
	Original types.Animal     // record before the edit
	Updated  types.Animal     // record as now stored
	Rejected []FieldRejection // fields that kept their old value
}

// Update edits the animal with identifier id. Each field of p is validated on
// its own: a rejected field keeps its old value and is listed in the result
// while the remaining fields still apply. A new identifier must be positive
// and unused by any other animal. A non-empty colour is normalised to an
// initial capital; an empty one is ignored.
//
// The edited record is written to the store under the original identifier
// and replaces the in-memory record only after that write succeeds.
func (r *Repository) Update(id int, p types.Patch) (UpdateResult, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return UpdateResult{}, fmt.Errorf("%w: animal %d", types.ErrNotFound, id)
	}

	original := r.animals[idx]
	res := UpdateResult{Original: original}
	edited := original

	if p.ID != nil {
		if err := r.checkNewID(*p.ID, id); err != nil {
			res.Rejected = append(res.Rejected, FieldRejection{Field: "ID", Err: err})
		} else {
			edited.ID = *p.ID
		}
	}
	applyFloat := func(field string, v *float64, dst *float64) {
		if v == nil {
			return
		}
		if err := types.ValidateField(field, *v); err != nil {
			res.Rejected = append(res.Rejected, FieldRejection{Field: field, Err: err})
			return
		}
		*dst = *v
	}
	applyFloat("Water", p.Water, &edited.Water)
	applyFloat("Cost", p.Cost, &edited.Cost)
	applyFloat("Weight", p.Weight, &edited.Weight)
	applyFloat("Yield", p.Yield, &edited.Yield)
	if p.Colour != nil && strings.TrimSpace(*p.Colour) != "" {
		edited.Colour = NormalizeColour(*p.Colour)
	}

	if err := r.store.UpdateAnimal(id, edited); err != nil {
		r.log.Warn("update failed", zap.Int("id", id), zap.Error(err))
		return UpdateResult{}, err
	}

	r.animals[idx] = edited
	res.Updated = edited
	r.log.Info("updated",
		zap.Int("original_id", id),
		zap.Int("id", edited.ID),
		zap.Int("rejected", len(res.Rejected)),
	)
	return res, nil
}

// checkNewID validates a replacement identifier for the animal currently
// holding current.
func (r *Repository) checkNewID(newID, current int) error {
	if newID <= 0 {
		return types.ErrInvalidID
	}
	if newID != current && r.indexOf(newID) >= 0 {
		return fmt.Errorf("%w: %d", types.ErrDuplicateID, newID)
	}
	return nil
}

// Delete removes the animal with identifier id from the store and then from
// the collection. An unknown id returns ErrNotFound without touching the
// store.
func (r *Repository) Delete(id int) (types.Animal, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return types.Animal{}, fmt.Errorf("%w: animal %d", types.ErrNotFound, id)
	}

	a := r.animals[idx]
	if err := r.store.DeleteAnimal(a); err != nil {
		r.log.Warn("delete failed", zap.Int("id", id), zap.Error(err))
		return types.Animal{}, err
	}

	r.animals = slices.Delete(r.animals, idx, idx+1)
	r.log.Info("deleted", zap.String("species", a.Species.String()), zap.Int("id", id))
	return a, nil
}

func (r *Repository) indexOf(id int) int {
	return slices.IndexFunc(r.animals, func(a types.Animal) bool { return a.ID == id })
}

// NormalizeColour returns colour with its first letter upper-cased and the
// rest lower-cased ("bROWN" becomes "Brown").
func NormalizeColour(colour string) string {
	colour = strings.TrimSpace(colour)
	if colour == "" {
		return colour
	}
	r := []rune(strings.ToLower(colour))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// Rejections joins the rejected fields of res into one error, or nil.
func (res UpdateResult) Rejections() error {
	errs := make([]error, 0, len(res.Rejected))
	for _, f := range res.Rejected {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}
