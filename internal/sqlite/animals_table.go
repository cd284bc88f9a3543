package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// LoadAll reads every species table in types.AllSpecies order. NULL numeric
// columns read as 0 and a NULL colour as "".
func (b *Backend) LoadAll() ([]types.Animal, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	var animals []types.Animal
	for _, sp := range types.AllSpecies {
		loaded, err := loadSpecies(db, sp)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s: %w", types.ErrStorage, sp, err)
		}
		animals = append(animals, loaded...)
	}
	b.log.Debug("loaded animals", zap.Int("count", len(animals)))
	return animals, nil
}

func loadSpecies(db *sql.DB, sp types.Species) ([]types.Animal, error) {
	t, err := tableFor(sp)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT ID, Water, Cost, Weight, Colour, %s FROM %s", t.yieldCol, t.name,
	))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var animals []types.Animal
	for rows.Next() {
		a, err := hydrateAnimal(rows, sp)
		if err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return animals, nil
}

// hydrateAnimal scans one species row, mapping NULLs to zero values.
func hydrateAnimal(rows *sql.Rows, sp types.Species) (types.Animal, error) {
	var (
		id                         sql.NullInt64
		water, cost, weight, yield sql.NullFloat64
		colour                     sql.NullString
	)
	if err := rows.Scan(&id, &water, &cost, &weight, &colour, &yield); err != nil {
		return types.Animal{}, err
	}
	return types.Animal{
		ID:      int(id.Int64),
		Species: sp,
		Water:   water.Float64,
		Cost:    cost.Float64,
		Weight:  weight.Float64,
		Colour:  colour.String,
		Yield:   yield.Float64,
	}, nil
}

// InsertAnimal writes a new row to the species table of a.
func (b *Backend) InsertAnimal(a types.Animal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	t, err := tableFor(a.Species)
	if err != nil {
		return err
	}

	res, err := db.Exec(fmt.Sprintf(
		"INSERT INTO %s (ID, Water, Cost, Weight, Colour, %s) VALUES (?, ?, ?, ?, ?, ?)",
		t.name, t.yieldCol,
	), a.ID, a.Water, a.Cost, a.Weight, a.Colour, a.Yield)
	if err != nil {
		return fmt.Errorf("%w: insert %s %d: %w", types.ErrStorage, a.Species, a.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: insert %s %d: no rows written", types.ErrStorage, a.Species, a.ID)
	}

	b.log.Debug("inserted animal", zap.String("species", a.Species.String()), zap.Int("id", a.ID))
	return nil
}

// UpdateAnimal overwrites the row stored under originalID, including its ID.
func (b *Backend) UpdateAnimal(originalID int, a types.Animal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	t, err := tableFor(a.Species)
	if err != nil {
		return err
	}

	res, err := db.Exec(fmt.Sprintf(
		"UPDATE %s SET ID = ?, Water = ?, Cost = ?, Weight = ?, Colour = ?, %s = ? WHERE ID = ?",
		t.name, t.yieldCol,
	), a.ID, a.Water, a.Cost, a.Weight, a.Colour, a.Yield, originalID)
	if err != nil {
		return fmt.Errorf("%w: update %s %d: %w", types.ErrStorage, a.Species, originalID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update %s %d: %w", types.ErrStorage, a.Species, originalID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", types.ErrNotFound, a.Species, originalID)
	}

	b.log.Debug("updated animal",
		zap.String("species", a.Species.String()),
		zap.Int("original_id", originalID),
		zap.Int("id", a.ID),
	)
	return nil
}

// DeleteAnimal removes the row for a. Zero rows affected is reported as
// ErrNotFound, so callers never drop a record the store still holds.
func (b *Backend) DeleteAnimal(a types.Animal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	t, err := tableFor(a.Species)
	if err != nil {
		return err
	}

	res, err := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE ID = ?", t.name), a.ID)
	if err != nil {
		return fmt.Errorf("%w: delete %s %d: %w", types.ErrStorage, a.Species, a.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete %s %d: %w", types.ErrStorage, a.Species, a.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", types.ErrNotFound, a.Species, a.ID)
	}

	b.log.Debug("deleted animal",
		zap.String("species", a.Species.String()),
		zap.Int("id", a.ID),
		zap.Int64("rows", n),
	)
	return nil
}
