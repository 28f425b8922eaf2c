package allpaths_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raildesign/allpaths"
	"github.com/katalvlaran/raildesign/network"
)

func TestDistances_Triangle(t *testing.T) {
	net := buildNetwork(t, 3, []edge{{0, 1, 1000}, {1, 2, 1000}, {0, 2, 2000}})

	got, err := allpaths.Distances(net, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1000, 2000}, got)

	got, err = allpaths.Distances(net, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2000, 1000, 0}, got)
}

func TestDistances_UnreachableNodes(t *testing.T) {
	// A-B connected, C isolated.
	net := buildNetwork(t, 3, []edge{{0, 1, 1500}})

	got, err := allpaths.Distances(net, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1500, allpaths.Unreachable}, got)
}

func TestDistances_ZeroDistanceArcs(t *testing.T) {
	// Search rejects this network; a distance-only run does not.
	net := buildNetwork(t, 3, []edge{{0, 1, 0}, {1, 2, 1000}})

	got, err := allpaths.Distances(net, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1000}, got)
}

func TestDistances_Validation(t *testing.T) {
	_, err := allpaths.Distances(nil, 0)
	assert.ErrorIs(t, err, allpaths.ErrNilNetwork)

	net := buildNetwork(t, 2, []edge{{0, 1, 1000}})
	_, err = allpaths.Distances(net, 2)
	assert.ErrorIs(t, err, allpaths.ErrNodeNotFound)
	_, err = allpaths.Distances(net, -1)
	assert.ErrorIs(t, err, allpaths.ErrNodeNotFound)

	_, err = allpaths.NewDistanceTable(nil)
	assert.ErrorIs(t, err, allpaths.ErrNilNetwork)
}

func TestDistances_MatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 25; round++ {
		n := 3 + rng.Intn(5)
		net := randomNetwork(t, rng, n)
		// An extra node without arcs keeps Unreachable covered.
		if round%5 == 0 {
			net = withIsolatedNode(t, net)
		}

		table, err := allpaths.NewDistanceTable(net)
		require.NoError(t, err, "round %d", round)
		require.Equal(t, net.NodeCount(), table.Len())

		for from := 0; from < net.NodeCount(); from++ {
			row, err := allpaths.Distances(net, from)
			require.NoError(t, err)
			require.Equal(t, row, table.Row(from), "round %d from %d", round, from)

			for to := 0; to < net.NodeCount(); to++ {
				want, _ := bruteForce(net, from, to)
				require.Equal(t, want, row[to], "round %d %d→%d", round, from, to)

				d, ok := table.Distance(from, to)
				require.Equal(t, want != allpaths.Unreachable, ok)
				if ok {
					require.Equal(t, want, d)
				}
			}
		}
	}
}

func TestDistances_AgreeWithSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	net := randomNetwork(t, rng, 10)
	table, err := allpaths.NewDistanceTable(net)
	require.NoError(t, err)

	for home := 0; home < net.NodeCount(); home++ {
		for away := 0; away < net.NodeCount(); away++ {
			res, err := allpaths.Search(net, network.CrewSegment{Home: home, Away: away})
			require.NoError(t, err)
			d, ok := table.Distance(home, away)
			require.True(t, ok)
			require.Equal(t, res.Distance, d, "%d→%d", home, away)
		}
	}
}

func TestDistanceTable_OutOfRange(t *testing.T) {
	net := buildNetwork(t, 2, []edge{{0, 1, 1000}})
	table, err := allpaths.NewDistanceTable(net)
	require.NoError(t, err)

	_, ok := table.Distance(0, 2)
	assert.False(t, ok)
	_, ok = table.Distance(-1, 0)
	assert.False(t, ok)
	assert.Nil(t, table.Row(2))

	row := table.Row(0)
	row[1] = 42
	d, ok := table.Distance(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(1000), d)
}

// withIsolatedNode rebuilds net with one extra node that has no arcs.
func withIsolatedNode(t *testing.T, net *network.Network) *network.Network {
	t.Helper()
	var edges []edge
	for _, a := range net.Arcs() {
		if a.ID%2 == 0 {
			edges = append(edges, edge{a.Origin, a.Destination, a.Distance})
		}
	}

	return buildNetwork(t, net.NodeCount()+1, edges)
}
