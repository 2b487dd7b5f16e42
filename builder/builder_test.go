package builder_test

import (
	"math/rand"
	"testing"

	"github.com/jwhandley/ttwa/builder"
	"github.com/stretchr/testify/require"
)

func TestBlockCommunities(t *testing.T) {
	m, err := builder.Build(6, builder.BlockCommunities([]int{3, 3}, 10000, 0))
	require.NoError(t, err)
	require.Equal(t, int64(10000), m[0][1])
	require.Equal(t, int64(0), m[0][3])
	require.Equal(t, int64(10000), m[5][5])
}

func TestBlockCommunities_BadSize(t *testing.T) {
	_, err := builder.Build(5, builder.BlockCommunities([]int{3, 3}, 1, 0))
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestRandomSparseFlows_Deterministic(t *testing.T) {
	m1, err := builder.Build(10, builder.RandomSparseFlows(0.3), builder.WithSeed(42))
	require.NoError(t, err)
	m2, err := builder.Build(10, builder.RandomSparseFlows(0.3), builder.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, m1, m2)
}

func TestRandomSparseFlows_NeedsRand(t *testing.T) {
	_, err := builder.Build(4, builder.RandomSparseFlows(0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparseFlows_InvalidDensity(t *testing.T) {
	_, err := builder.Build(4, builder.RandomSparseFlows(1.5), builder.WithRand(rand.New(rand.NewSource(1))))
	require.ErrorIs(t, err, builder.ErrInvalidDensity)
}

func TestRandomSparseFlows_FullDensityNoRand(t *testing.T) {
	m, err := builder.Build(3, builder.RandomSparseFlows(1), builder.WithMaxWeight(7))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, int64(7), m[i][j])
		}
	}
}

func TestCommuterChain(t *testing.T) {
	m, err := builder.Build(4, builder.CommuterChain(5000))
	require.NoError(t, err)
	require.Equal(t, int64(5000), m[0][1])
	require.Equal(t, int64(5000), m[1][0])
	require.Equal(t, int64(5000), m[2][3])
	require.Equal(t, int64(0), m[1][2])
}

func TestCommuterChain_OddSize(t *testing.T) {
	_, err := builder.Build(3, builder.CommuterChain(1))
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestPendant(t *testing.T) {
	m, err := builder.Build(3, builder.Pendant(10000, 1))
	require.NoError(t, err)
	require.Equal(t, int64(10000), m[0][1])
	require.Equal(t, int64(1), m[0][2])
	require.Equal(t, int64(1), m[2][0])
	require.Equal(t, int64(0), m[1][2])
}
