package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateCapitalsHasFiftyStates(t *testing.T) {
	assert.Len(t, StateCapitals, 50)
}

func TestResolveEveryState(t *testing.T) {
	r := NewLocalityResolver(StateCapitals)
	for state, city := range StateCapitals {
		loc, err := r.Resolve(state)
		require.NoError(t, err, state)
		assert.Equal(t, city+", "+state, loc.String())

		again, err := r.Resolve(state)
		require.NoError(t, err)
		assert.Equal(t, loc, again)
	}
}

func TestResolveNormalizesInput(t *testing.T) {
	r := NewLocalityResolver(StateCapitals)

	tests := []struct {
		in   string
		want string
	}{
		{"colorado", "Denver, Colorado"},
		{"  COLORADO\t", "Denver, Colorado"},
		{"new york", "Albany, New York"},
		{"nORTH dAKOTA", "Bismarck, North Dakota"},
		{"west virginia\n", "Charleston, West Virginia"},
	}

	for _, tt := range tests {
		loc, err := r.Resolve(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, loc.String(), tt.in)
	}
}

func TestResolveRejectsUnknown(t *testing.T) {
	r := NewLocalityResolver(StateCapitals)

	for _, in := range []string{"Atlantis", "", "   ", "Colo", "NewYork", "new  york", "District Of Columbia", "Denver"} {
		_, err := r.Resolve(in)
		assert.ErrorIs(t, err, ErrRejectedInput, "input %q", in)
	}
}

func TestResolverCopiesTable(t *testing.T) {
	table := map[string]string{"Colorado": "Denver"}
	r := NewLocalityResolver(table)
	table["Atlantis"] = "Poseidonis"

	_, err := r.Resolve("Atlantis")
	assert.ErrorIs(t, err, ErrRejectedInput)
}

func TestStatesSorted(t *testing.T) {
	states := NewLocalityResolver(StateCapitals).States()
	require.Len(t, states, 50)
	assert.Equal(t, "Alabama", states[0])
	assert.Equal(t, "Wyoming", states[49])
}
