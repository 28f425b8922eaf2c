package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/raildesign/network"
)

type NetworkSuite struct {
	suite.Suite
	d *network.Draft
}

func (s *NetworkSuite) SetupTest() {
	s.d = network.NewDraft()
}

// triangle declares A, B, C with arcs A-B, B-C, A-C and freezes the draft.
func (s *NetworkSuite) triangle() *network.Network {
	require := require.New(s.T())
	for _, code := range []string{"A", "B", "C"} {
		_, err := s.d.AddNode(code, 10)
		require.NoError(err)
	}
	_, _, err := s.d.AddArcPair(0, 1, network.ArcAttributes{Distance: 1000, MaximumTrainLength: 6000, MaximumTonnage: 9000, MaximumNumberOfTrains: 4})
	require.NoError(err)
	_, _, err = s.d.AddArcPair(1, 2, network.ArcAttributes{Distance: 1000, MaximumTrainLength: 5000, MaximumTonnage: 8000, MaximumNumberOfTrains: 3})
	require.NoError(err)
	_, _, err = s.d.AddArcPair(0, 2, network.ArcAttributes{Distance: 2000, MaximumTrainLength: 7000, MaximumTonnage: 7000, MaximumNumberOfTrains: 2})
	require.NoError(err)
	n, err := s.d.Freeze()
	require.NoError(err)

	return n
}

func (s *NetworkSuite) TestNodeIDsFollowDeclarationOrder() {
	require := require.New(s.T())
	n := s.triangle()
	require.Equal(3, n.NodeCount())
	for i, code := range []string{"A", "B", "C"} {
		v, err := n.NodeByCode(code)
		require.NoError(err)
		require.Equal(i, v.ID)
		require.Equal(code, n.Code(i))
	}
}

func (s *NetworkSuite) TestReverseArcPairing() {
	require := require.New(s.T())
	n := s.triangle()
	require.Equal(6, n.ArcCount())
	for _, a := range n.Arcs() {
		r, err := n.Arc(a.Reverse)
		require.NoError(err)
		require.NotEqual(a.ID, r.ID, "reverse must have its own identity")
		require.Equal(a.ID, r.Reverse)
		require.Equal(a.Destination, r.Origin)
		require.Equal(a.Origin, r.Destination)
		require.Equal(a.ArcAttributes, r.ArcAttributes)
	}
}

func (s *NetworkSuite) TestOriginatingArcsInAllocationOrder() {
	require := require.New(s.T())
	n := s.triangle()

	a, err := n.OriginatingArcs(0)
	require.NoError(err)
	require.Equal([]int{0, 4}, a)

	b, err := n.OriginatingArcs(1)
	require.NoError(err)
	require.Equal([]int{1, 2}, b)

	c, err := n.OriginatingArcs(2)
	require.NoError(err)
	require.Equal([]int{3, 5}, c)

	var seen []int
	n.ForOriginatingArcs(2, func(arc network.RailArc) { seen = append(seen, arc.ID) })
	require.Equal(c, seen)
}

func (s *NetworkSuite) TestReturnedSlicesAreCopies() {
	require := require.New(s.T())
	n := s.triangle()

	a, _ := n.OriginatingArcs(0)
	a[0] = 99
	again, _ := n.OriginatingArcs(0)
	require.Equal(0, again[0])

	nodes := n.Nodes()
	nodes[0].Originating[0] = 99
	v, _ := n.Node(0)
	require.Equal(0, v.Originating[0])
}

func (s *NetworkSuite) TestDuplicateAndEmptyCodes() {
	require := require.New(s.T())
	_, err := s.d.AddNode("A", 0)
	require.NoError(err)
	_, err = s.d.AddNode("A", 0)
	require.ErrorIs(err, network.ErrDuplicateCode)
	_, err = s.d.AddNode("", 0)
	require.ErrorIs(err, network.ErrEmptyCode)
	_, err = s.d.AddNode("B", -1)
	require.ErrorIs(err, network.ErrNegativeAttribute)
}

func (s *NetworkSuite) TestArcValidation() {
	require := require.New(s.T())
	_, _ = s.d.AddNode("A", 0)
	_, _, err := s.d.AddArcPair(0, 5, network.ArcAttributes{})
	require.ErrorIs(err, network.ErrNodeNotFound)
	_, _, err = s.d.AddArcPair(0, 0, network.ArcAttributes{Distance: -1})
	require.ErrorIs(err, network.ErrNegativeAttribute)
}

func (s *NetworkSuite) TestFrozenDraftRejectsCalls() {
	require := require.New(s.T())
	s.triangle()

	_, err := s.d.AddNode("D", 0)
	require.ErrorIs(err, network.ErrFrozen)
	_, _, err = s.d.AddArcPair(0, 1, network.ArcAttributes{})
	require.ErrorIs(err, network.ErrFrozen)
	_, err = s.d.AddCrewSegment(0, 1)
	require.ErrorIs(err, network.ErrFrozen)
	_, err = s.d.AddCarBlock(network.CarBlock{})
	require.ErrorIs(err, network.ErrFrozen)
	_, err = s.d.Freeze()
	require.ErrorIs(err, network.ErrFrozen)
}

func (s *NetworkSuite) TestCarBlocksAndCrewSegments() {
	require := require.New(s.T())
	_, _ = s.d.AddNode("A", 0)
	_, _ = s.d.AddNode("B", 0)

	id, err := s.d.AddCarBlock(network.CarBlock{ID: 42, Code: "K1", Origin: 0, Destination: 1, NumberOfCars: 3, ShortestDistance: 1500})
	require.NoError(err)
	require.Equal(0, id, "car block ID is assigned, not taken from input")
	_, err = s.d.AddCarBlock(network.CarBlock{Code: "K2", Origin: 0, Destination: 7})
	require.ErrorIs(err, network.ErrNodeNotFound)

	seg, err := s.d.AddCrewSegment(1, 0)
	require.NoError(err)
	require.Equal(0, seg)
	_, err = s.d.AddCrewSegment(-1, 0)
	require.ErrorIs(err, network.ErrNodeNotFound)

	n, err := s.d.Freeze()
	require.NoError(err)
	require.Equal(1, n.CarBlockCount())
	require.Equal(1, n.CrewSegmentCount())
	cs, err := n.CrewSegment(0)
	require.NoError(err)
	require.Equal(network.CrewSegment{ID: 0, Home: 1, Away: 0}, cs)
	_, err = n.CrewSegment(1)
	require.ErrorIs(err, network.ErrCrewSegmentNotFound)
}

func (s *NetworkSuite) TestPathHelpers() {
	require := require.New(s.T())
	n := s.triangle()

	require.True(n.IsContiguous([]int{0, 2}, 0, 2))
	require.True(n.IsContiguous(nil, 1, 1))
	require.False(n.IsContiguous([]int{2, 0}, 0, 2))
	require.False(n.IsContiguous([]int{0}, 0, 2))

	d, err := n.PathDistance([]int{0, 2})
	require.NoError(err)
	require.Equal(int64(2000), d)
	_, err = n.PathDistance([]int{77})
	require.ErrorIs(err, network.ErrArcNotFound)

	_, err = n.Node(3)
	require.ErrorIs(err, network.ErrNodeNotFound)
	_, err = n.NodeByCode("Z")
	require.ErrorIs(err, network.ErrNodeNotFound)
	_, err = n.ReverseOf(-1)
	require.ErrorIs(err, network.ErrArcNotFound)
}

func (s *NetworkSuite) TestPathDistanceOverflow() {
	require := require.New(s.T())
	for _, code := range []string{"A", "B"} {
		_, err := s.d.AddNode(code, 0)
		require.NoError(err)
	}
	_, _, err := s.d.AddArcPair(0, 1, network.ArcAttributes{Distance: math.MaxInt64 - 1})
	require.NoError(err)
	n, err := s.d.Freeze()
	require.NoError(err)

	d, err := n.PathDistance([]int{0})
	require.NoError(err)
	require.Equal(int64(math.MaxInt64-1), d)

	_, err = n.PathDistance([]int{0, 1})
	require.ErrorIs(err, network.ErrDistanceOverflow)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}
