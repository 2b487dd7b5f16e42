package area_test

import (
	"testing"

	"github.com/jwhandley/ttwa/area"
	"github.com/jwhandley/ttwa/builder"
	"github.com/jwhandley/ttwa/graph"
	"github.com/stretchr/testify/require"
)

func mustGraph(t *testing.T, m [][]int64) *graph.Graph {
	t.Helper()
	g, err := graph.FromAdjacencyMatrix(m)
	require.NoError(t, err)
	return g
}

func TestNewAreaCollection_SingletonPartition(t *testing.T) {
	m, err := builder.Build(3, builder.Pendant(100, 5))
	require.NoError(t, err)
	g := mustGraph(t, m)

	ac := area.NewAreaCollection(g)
	require.Equal(t, []int{0, 1, 2}, ac.PresentAreas())

	for v := 0; v < 3; v++ {
		a := ac.Area(v)
		require.NotNil(t, a)
		require.Equal(t, v, a.ID())
		require.Equal(t, []int{v}, a.Members())
		require.Equal(t, v, ac.NodeArea(v))
	}

	a0 := ac.Area(0)
	require.Equal(t, int64(105), a0.FlowFromArea()) // 100 to node1 + 5 to node2
	require.Equal(t, int64(105), a0.FlowToArea())   // symmetric fixture
	require.Equal(t, int64(0), a0.SelfContainment())
}

func TestFit_RejectsNegativeMaxIter(t *testing.T) {
	m, err := builder.Build(3, builder.Pendant(100, 5))
	require.NoError(t, err)
	g := mustGraph(t, m)
	ac := area.NewAreaCollection(g)

	_, err = ac.Fit(-1)
	require.ErrorIs(t, err, area.ErrInvalidMaxIter)
}

func TestFit_MaxIterZeroLeavesSingletonsUntouched(t *testing.T) {
	m, err := builder.Build(3, builder.Pendant(100, 5))
	require.NoError(t, err)
	g := mustGraph(t, m)
	ac := area.NewAreaCollection(g)

	partition, err := ac.Fit(0)
	require.NoError(t, err)
	require.Equal(t, 0, partition.Iterations)
	require.Len(t, partition.Areas, 3)
	for v := 0; v < 3; v++ {
		require.Equal(t, v, ac.NodeArea(v))
	}
}

func TestFit_NeverMergesAcrossDisconnectedComponents(t *testing.T) {
	blockSizes := []int{5, 5}
	m, err := builder.Build(10, builder.BlockCommunities(blockSizes, 50, 0))
	require.NoError(t, err)
	g := mustGraph(t, m)
	ac := area.NewAreaCollection(g)

	partition, err := ac.Fit(1000)
	require.NoError(t, err)
	require.NotEmpty(t, partition.Areas)

	for i := 0; i < 5; i++ {
		for j := 5; j < 10; j++ {
			require.NotEqual(t, ac.NodeArea(i), ac.NodeArea(j),
				"nodes in disconnected blocks must never share an area")
		}
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			require.Equal(t, ac.NodeArea(i), ac.NodeArea(j),
				"a fully-connected disconnected block must end up in a single area")
		}
	}
}

func TestFit_PartitionIsComplete(t *testing.T) {
	blockSizes := []int{4, 6}
	m, err := builder.Build(10, builder.BlockCommunities(blockSizes, 20, 0))
	require.NoError(t, err)
	g := mustGraph(t, m)
	ac := area.NewAreaCollection(g)

	partition, err := ac.Fit(500)
	require.NoError(t, err)

	seen := make(map[int]struct{})
	for _, a := range partition.Areas {
		for _, v := range a.Members() {
			_, dup := seen[v]
			require.False(t, dup, "node %d counted in more than one area", v)
			seen[v] = struct{}{}
		}
	}
	require.Len(t, seen, 10)

	for _, a := range partition.Areas {
		require.LessOrEqual(t, a.SelfContainment(), a.FlowToArea())
		require.LessOrEqual(t, a.SelfContainment(), a.FlowFromArea())
	}
}

func TestFit_IsDeterministic(t *testing.T) {
	m, err := builder.Build(12, builder.BlockCommunities([]int{4, 4, 4}, 30, 2))
	require.NoError(t, err)
	g := mustGraph(t, m)

	ac1 := area.NewAreaCollection(g)
	p1, err := ac1.Fit(100)
	require.NoError(t, err)

	ac2 := area.NewAreaCollection(g)
	p2, err := ac2.Fit(100)
	require.NoError(t, err)

	require.Equal(t, p1.Iterations, p2.Iterations)
	require.Equal(t, len(p1.Areas), len(p2.Areas))
	for v := 0; v < g.N(); v++ {
		require.Equal(t, ac1.NodeArea(v), ac2.NodeArea(v))
	}
}

func TestFit_CommuterChainPairsStayTogetherOrMerge(t *testing.T) {
	m, err := builder.Build(6, builder.CommuterChain(40))
	require.NoError(t, err)
	g := mustGraph(t, m)
	ac := area.NewAreaCollection(g)

	partition, err := ac.Fit(200)
	require.NoError(t, err)
	require.NotEmpty(t, partition.Areas)

	for k := 0; k+1 < 6; k += 2 {
		require.Equal(t, ac.NodeArea(k), ac.NodeArea(k+1),
			"a commuter pair with no outside edges must share an area")
	}
}

func TestFit_PendantAbsorption(t *testing.T) {
	m, err := builder.Build(3, builder.Pendant(1000, 10))
	require.NoError(t, err)
	g := mustGraph(t, m)
	ac := area.NewAreaCollection(g)

	partition, err := ac.Fit(50)
	require.NoError(t, err)

	seen := make(map[int]struct{})
	for _, a := range partition.Areas {
		for _, v := range a.Members() {
			seen[v] = struct{}{}
		}
	}
	require.Len(t, seen, 3)
	require.Equal(t, ac.NodeArea(0), ac.NodeArea(2),
		"the pendant node must be absorbed into its only neighbour's area")
}

func TestSelfContainmentFraction_NoInternalFlowIsZero(t *testing.T) {
	m, err := builder.Build(3, builder.Pendant(100, 5))
	require.NoError(t, err)
	g := mustGraph(t, m)
	ac := area.NewAreaCollection(g)

	a0 := ac.Area(0)
	require.Equal(t, 0.0, a0.SelfContainmentFraction())
}

func TestFit_LocksSingleSelfLoopedNodeInsteadOfPanicking(t *testing.T) {
	g := mustGraph(t, [][]int64{{5}})
	ac := area.NewAreaCollection(g)

	partition, err := ac.Fit(100)
	require.NoError(t, err)
	require.Equal(t, 0, partition.Iterations)
	require.False(t, partition.IterLimitReached)
	require.Len(t, partition.Areas, 1)
	require.Equal(t, []int{0}, partition.Areas[0].Members())
	require.Equal(t, 0, ac.NodeArea(0))
}

func TestFit_LocksEachDisconnectedSelfContainedBlock(t *testing.T) {
	blockSizes := []int{3, 3}
	m, err := builder.Build(6, builder.BlockCommunities(blockSizes, 5, 0))
	require.NoError(t, err)
	g := mustGraph(t, m)
	ac := area.NewAreaCollection(g)

	partition, err := ac.Fit(1000)
	require.NoError(t, err)
	require.NotEmpty(t, partition.Areas)

	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			require.NotEqual(t, ac.NodeArea(i), ac.NodeArea(j),
				"disconnected self-contained blocks must never merge")
		}
	}
}

func TestWithSelfContainmentPolicy_OptionIsAccepted(t *testing.T) {
	g := mustGraph(t, [][]int64{{3}})
	acDefault := area.NewAreaCollection(g)
	acMin := area.NewAreaCollection(g, area.WithSelfContainmentPolicy(area.CombinatorMin))
	require.NotNil(t, acDefault)
	require.NotNil(t, acMin)
}
