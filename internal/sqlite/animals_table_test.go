package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

func withID(a types.Animal, id int) types.Animal {
	a.ID = id
	return a
}

func TestLoadAll_OrdersBySpeciesThenStorage(t *testing.T) {
	b, _ := attachTestBackend(t, nil)

	sheep := withID(types.NewAnimal(types.SpeciesSheep, 4, 1, 60, "Black", 1.5), 1)
	cow2 := withID(types.NewAnimal(types.SpeciesCow, 12, 6, 250, "White", 25), 2)
	goat := withID(types.NewAnimal(types.SpeciesGoat, 3, 2, 40, "White", 5), 3)
	cow4 := withID(types.NewAnimal(types.SpeciesCow, 10, 5, 200, "Brown", 20), 4)

	for _, a := range []types.Animal{sheep, cow2, goat, cow4} {
		require.NoError(t, b.InsertAnimal(a))
	}

	animals, err := b.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []types.Animal{cow2, cow4, goat, sheep}, animals)
}

func TestLoadAll_NullColumnsReadAsZero(t *testing.T) {
	b, _ := attachTestBackend(t, nil)

	_, err := b.db.Exec("INSERT INTO Goat (ID, Water, Cost, Weight, Colour, Milk) VALUES (NULL, NULL, 2.5, NULL, NULL, NULL)")
	require.NoError(t, err)

	animals, err := b.LoadAll()
	require.NoError(t, err)
	require.Len(t, animals, 1)
	assert.Equal(t, types.Animal{Species: types.SpeciesGoat, Cost: 2.5}, animals[0])
}

func TestInsertAnimal_DuplicateIDRejected(t *testing.T) {
	b, _ := attachTestBackend(t, nil)

	cow := withID(types.NewAnimal(types.SpeciesCow, 10, 5, 200, "Brown", 20), 7)
	require.NoError(t, b.InsertAnimal(cow))

	err := b.InsertAnimal(cow)
	require.Error(t, err)
	assert.True(t, types.IsStorage(err))
}

func TestInsertAnimal_UnknownSpecies(t *testing.T) {
	b, _ := attachTestBackend(t, nil)
	err := b.InsertAnimal(types.Animal{ID: 1, Species: "Pig"})
	assert.ErrorIs(t, err, types.ErrInvalidSpecies)
}

func TestUpdateAnimal(t *testing.T) {
	tests := []struct {
		name       string
		originalID int
		update     types.Animal
		wantErr    error
		want       []types.Animal
	}{
		{
			name:       "overwrites fields in place",
			originalID: 1,
			update:     withID(types.NewAnimal(types.SpeciesSheep, 5, 2, 70, "Grey", 2), 1),
			want:       []types.Animal{withID(types.NewAnimal(types.SpeciesSheep, 5, 2, 70, "Grey", 2), 1)},
		},
		{
			name:       "changes the identifier",
			originalID: 1,
			update:     withID(types.NewAnimal(types.SpeciesSheep, 4, 1, 60, "Black", 1.5), 9),
			want:       []types.Animal{withID(types.NewAnimal(types.SpeciesSheep, 4, 1, 60, "Black", 1.5), 9)},
		},
		{
			name:       "missing row reports not found",
			originalID: 42,
			update:     withID(types.NewAnimal(types.SpeciesSheep, 4, 1, 60, "Black", 1.5), 42),
			wantErr:    types.ErrNotFound,
			want:       []types.Animal{withID(types.NewAnimal(types.SpeciesSheep, 4, 1, 60, "Black", 1.5), 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := attachTestBackend(t, nil)
			require.NoError(t, b.InsertAnimal(withID(types.NewAnimal(types.SpeciesSheep, 4, 1, 60, "Black", 1.5), 1)))

			err := b.UpdateAnimal(tt.originalID, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			animals, err := b.LoadAll()
			require.NoError(t, err)
			assert.Equal(t, tt.want, animals)
		})
	}
}

func TestDeleteAnimal(t *testing.T) {
	b, _ := attachTestBackend(t, nil)

	cow := withID(types.NewAnimal(types.SpeciesCow, 10, 5, 200, "Brown", 20), 1)
	goat := withID(types.NewAnimal(types.SpeciesGoat, 3, 2, 40, "White", 5), 2)
	require.NoError(t, b.InsertAnimal(cow))
	require.NoError(t, b.InsertAnimal(goat))

	require.NoError(t, b.DeleteAnimal(cow))

	animals, err := b.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []types.Animal{goat}, animals)

	err = b.DeleteAnimal(cow)
	assert.ErrorIs(t, err, types.ErrNotFound, "row already gone")
}

func TestDeleteAnimal_NullID(t *testing.T) {
	b, _ := attachTestBackend(t, nil)
	_, err := b.db.Exec("INSERT INTO Goat (ID, Water, Cost, Weight, Colour, Milk) VALUES (NULL, 1, 2, 3, 'Red', 4)")
	require.NoError(t, err)

	animals, err := b.LoadAll()
	require.NoError(t, err)
	require.Len(t, animals, 1)
	require.Zero(t, animals[0].ID)

	err = b.DeleteAnimal(animals[0])
	assert.ErrorIs(t, err, types.ErrNotFound)

	animals, err = b.LoadAll()
	require.NoError(t, err)
	assert.Len(t, animals, 1, "row with NULL ID is still stored")
}
