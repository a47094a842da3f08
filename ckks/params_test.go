package ckks

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameters(t *testing.T) {

	t.Run("Defaults", func(t *testing.T) {
		params, err := NewParametersFromLiteral(ParametersLiteral{})
		require.NoError(t, err)
		require.Equal(t, DefaultPolyDegree, params.N())
		require.Equal(t, DefaultScale, params.Scale())
		require.Equal(t, float64(DefaultLogScale), params.LogScale())
		require.Equal(t, MaxLogN, params.LogN())
		require.Equal(t, DefaultPolyDegree/2, params.Slots())
		require.Equal(t, MaxLogN-1, params.LogSlots())
		require.Equal(t, 2*DefaultPolyDegree, params.CiphertextSize())
		require.Equal(t, uint64(1)<<40, params.Q())
	})

	t.Run("Clamp", func(t *testing.T) {
		for _, N := range []int{MaxPolyDegree << 1, MaxPolyDegree << 4, 12345} {
			params, err := NewParameters(N, 1<<20)
			require.NoError(t, err)
			require.Equal(t, MaxPolyDegree, params.N())
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, pl := range []ParametersLiteral{
			{PolyDegree: -8},
			{PolyDegree: 1},
			{PolyDegree: 3},
			{PolyDegree: 1000},
			{PolyDegree: 16, Scale: -1},
			{PolyDegree: 16, Scale: math.NaN()},
			{PolyDegree: 16, Scale: math.Inf(1)},
		} {
			_, err := NewParametersFromLiteral(pl)
			require.ErrorIs(t, err, ErrInvalidArgument, pl)
		}
	})

	t.Run("Equal", func(t *testing.T) {
		p0, err := NewParameters(1024, 1<<20)
		require.NoError(t, err)
		p1, err := NewParameters(1024, 1<<20)
		require.NoError(t, err)
		p2, err := NewParameters(1024, 1<<21)
		require.NoError(t, err)
		require.True(t, p0.Equal(&p1))
		require.False(t, p0.Equal(&p2))
	})

	t.Run("Marshalling", func(t *testing.T) {

		params, err := NewParameters(512, 1<<22)
		require.NoError(t, err)

		data, err := params.MarshalBinary()
		require.NoError(t, err)

		var have Parameters
		require.NoError(t, have.UnmarshalBinary(data))
		require.True(t, params.Equal(&have))

		data, err = json.Marshal(params)
		require.NoError(t, err)
		require.JSONEq(t, `{"PolyDegree":512,"Scale":4194304}`, string(data))

		require.NoError(t, json.Unmarshal([]byte(`{"PolyDegree":64}`), &have))
		require.Equal(t, 64, have.N())
		require.Equal(t, DefaultScale, have.Scale())

		require.ErrorIs(t, json.Unmarshal([]byte(`{"PolyDegree":63}`), &have), ErrInvalidArgument)
	})
}
