package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecies(t *testing.T) {
	tests := []struct {
		input   string
		want    Species
		wantErr bool
	}{
		{"Cow", SpeciesCow, false},
		{"goat", SpeciesGoat, false},
		{" SHEEP ", SpeciesSheep, false},
		{"pig", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSpecies(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSpecies)
				assert.True(t, IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpeciesYieldName(t *testing.T) {
	assert.Equal(t, "Milk", SpeciesCow.YieldName())
	assert.Equal(t, "Milk", SpeciesGoat.YieldName())
	assert.Equal(t, "Wool", SpeciesSheep.YieldName())
}

func TestErrorCategories(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidThreshold))
	assert.True(t, IsValidation(ErrDuplicateID))
	assert.True(t, IsNotFound(ErrNoAnimals))
	assert.True(t, IsStorage(ErrStoreDetached))
	assert.False(t, IsStorage(ErrInvalidID))
}
