package sqlite

import "github.com/mesh-intelligence/farmstock/pkg/types"

// Schema DDL. Tables are created only when missing so an existing farm file
// keeps its records.
const (
	createCow = `CREATE TABLE IF NOT EXISTS Cow (
    ID INTEGER UNIQUE,
    Water REAL,
    Cost REAL,
    Weight REAL,
    Colour TEXT,
    Milk REAL
);`

	createGoat = `CREATE TABLE IF NOT EXISTS Goat (
    ID INTEGER UNIQUE,
    Water REAL,
    Cost REAL,
    Weight REAL,
    Colour TEXT,
    Milk REAL
);`

	createSheep = `CREATE TABLE IF NOT EXISTS Sheep (
    ID INTEGER UNIQUE,
    Water REAL,
    Cost REAL,
    Weight REAL,
    Colour TEXT,
    Wool REAL
);`

	createCommodity = `CREATE TABLE IF NOT EXISTS Commodity (
    Item TEXT PRIMARY KEY,
    Price REAL
);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createCow,
	createGoat,
	createSheep,
	createCommodity,
}

// speciesTable describes the storage table of one species.
type speciesTable struct {
	name     string // table name, equal to the species tag
	yieldCol string // Milk or Wool
}

// speciesTables maps each species to its table. Only names from this map are
// ever interpolated into SQL.
var speciesTables = map[types.Species]speciesTable{
	types.SpeciesCow:   {name: "Cow", yieldCol: "Milk"},
	types.SpeciesGoat:  {name: "Goat", yieldCol: "Milk"},
	types.SpeciesSheep: {name: "Sheep", yieldCol: "Wool"},
}

func tableFor(s types.Species) (speciesTable, error) {
	t, ok := speciesTables[s]
	if !ok {
		return speciesTable{}, types.ErrInvalidSpecies
	}
	return t, nil
}
