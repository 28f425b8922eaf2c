package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/raildesign/builder"
	"github.com/katalvlaran/raildesign/distance"
	"github.com/katalvlaran/raildesign/network"
)

// triangleRecords is the A/B/C network: A-B 1.000, B-C 1.000, A-C 2.000.
func triangleRecords() builder.Records {
	return builder.Records{
		Nodes: []builder.Record{
			{"A", "100"},
			{"B", "200"},
			{"C", "300"},
		},
		CarBlocks: []builder.Record{
			{"K1", "A", "C", "10", "600", "1200", "2.000"},
		},
		Arcs: []builder.Record{
			{"A", "B", "1.000", "6000", "9000", "4"},
			{"B", "C", "1.000", "5000", "8000", "3"},
			{"A", "C", "2.000", "7000", "7000", "2"},
		},
		CrewSegments: []builder.Record{
			{"A", "C"},
		},
	}
}

type BuildSuite struct {
	suite.Suite
	recs builder.Records
}

func (s *BuildSuite) SetupTest() {
	s.recs = triangleRecords()
}

func (s *BuildSuite) TestNodesInInputOrder() {
	require := require.New(s.T())
	n, err := builder.Build(s.recs)
	require.NoError(err)

	nodes := n.Nodes()
	require.Len(nodes, 3)
	for i, want := range []struct {
		code string
		cost int
	}{{"A", 100}, {"B", 200}, {"C", 300}} {
		require.Equal(i, nodes[i].ID)
		require.Equal(want.code, nodes[i].Code)
		require.Equal(want.cost, nodes[i].BlockSwapCost)
	}
}

func (s *BuildSuite) TestArcPairsAreMirrored() {
	require := require.New(s.T())
	n, err := builder.Build(s.recs)
	require.NoError(err)
	require.Equal(6, n.ArcCount())

	for _, a := range n.Arcs() {
		r, err := n.Arc(a.Reverse)
		require.NoError(err)
		require.Equal(a.ID, r.Reverse, "reverse of reverse")
		require.Equal(a.Destination, r.Origin)
		require.Equal(a.Origin, r.Destination)
		require.Equal(a.ArcAttributes, r.ArcAttributes)
		require.NotEqual(a.ID, r.ID)
	}

	first, _ := n.Arc(0)
	require.Equal(network.ArcAttributes{
		Distance:              1000,
		MaximumTrainLength:    6000,
		MaximumTonnage:        9000,
		MaximumNumberOfTrains: 4,
	}, first.ArcAttributes)

	// The forward arc sits on the origin's list, the reverse on the destination's.
	aOut, _ := n.OriginatingArcs(0)
	require.Equal([]int{0, 4}, aOut)
	cOut, _ := n.OriginatingArcs(2)
	require.Equal([]int{3, 5}, cOut)
}

func (s *BuildSuite) TestCarBlocksAndCrewSegments() {
	require := require.New(s.T())
	n, err := builder.Build(s.recs)
	require.NoError(err)

	require.Equal([]network.CarBlock{{
		ID: 0, Code: "K1", Origin: 0, Destination: 2,
		NumberOfCars: 10, Length: 600, Tonnage: 1200, ShortestDistance: 2000,
	}}, n.CarBlocks())
	require.Equal([]network.CrewSegment{{ID: 0, Home: 0, Away: 2}}, n.CrewSegments())
}

func (s *BuildSuite) TestUnknownArcReferenceRejected() {
	require := require.New(s.T())
	s.recs.Arcs = append(s.recs.Arcs, builder.Record{"A", "Z", "1.0", "1", "1", "1"})

	n, err := builder.Build(s.recs)
	require.Nil(n, "no partial network on error")
	require.ErrorIs(err, builder.ErrUnknownNodeReference)

	var une *builder.UnknownNodeReferenceError
	require.True(errors.As(err, &une))
	require.Equal(builder.KindArc, une.Kind)
	require.Equal(builder.RoleDestination, une.Role)
	require.Equal("Z", une.Code)
	require.Equal(builder.Record{"A", "Z", "1.0", "1", "1", "1"}, une.Record)
}

func (s *BuildSuite) TestUnknownReferencesPerKind() {
	cases := []struct {
		name   string
		mutate func(r *builder.Records)
		kind   string
		role   string
	}{
		{"arc origin", func(r *builder.Records) {
			r.Arcs[0] = builder.Record{"Q", "B", "1", "1", "1", "1"}
		}, builder.KindArc, builder.RoleOrigin},
		{"car block origin", func(r *builder.Records) {
			r.CarBlocks[0] = builder.Record{"K1", "Q", "C", "1", "1", "1", "1"}
		}, builder.KindCarBlock, builder.RoleOrigin},
		{"car block destination", func(r *builder.Records) {
			r.CarBlocks[0] = builder.Record{"K1", "A", "Q", "1", "1", "1", "1"}
		}, builder.KindCarBlock, builder.RoleDestination},
		{"crew home", func(r *builder.Records) {
			r.CrewSegments[0] = builder.Record{"Q", "C"}
		}, builder.KindCrewSegment, builder.RoleHome},
		{"crew away", func(r *builder.Records) {
			r.CrewSegments[0] = builder.Record{"A", "Q"}
		}, builder.KindCrewSegment, builder.RoleAway},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			recs := triangleRecords()
			tc.mutate(&recs)
			n, err := builder.Build(recs)
			s.Nil(n)
			var une *builder.UnknownNodeReferenceError
			s.Require().True(errors.As(err, &une), "got %v", err)
			s.Equal(tc.kind, une.Kind)
			s.Equal(tc.role, une.Role)
			s.Equal("Q", une.Code)
		})
	}
}

func (s *BuildSuite) TestExcessPrecisionAbortsBuild() {
	require := require.New(s.T())
	s.recs.Arcs[1][2] = "1.0005"

	n, err := builder.Build(s.recs)
	require.Nil(n)
	require.ErrorIs(err, distance.ErrExcessPrecision)
}

func (s *BuildSuite) TestMalformedFields() {
	require := require.New(s.T())

	recs := triangleRecords()
	recs.Nodes[0] = builder.Record{"A"}
	_, err := builder.Build(recs)
	require.ErrorIs(err, builder.ErrFieldCount)

	recs = triangleRecords()
	recs.Arcs[0][3] = "long"
	_, err = builder.Build(recs)
	require.ErrorIs(err, builder.ErrBadInteger)

	recs = triangleRecords()
	recs.Nodes = append(recs.Nodes, builder.Record{"A", "0"})
	_, err = builder.Build(recs)
	require.ErrorIs(err, network.ErrDuplicateCode)

	recs = triangleRecords()
	recs.Arcs[0][2] = "-1"
	_, err = builder.Build(recs)
	require.ErrorIs(err, network.ErrNegativeAttribute)
}

func (s *BuildSuite) TestEmptyRecords() {
	n, err := builder.Build(builder.Records{})
	s.Require().NoError(err)
	s.Equal(0, n.NodeCount())
	s.Equal(0, n.ArcCount())
}

func (s *BuildSuite) TestDeterministic() {
	a, err := builder.Build(s.recs)
	s.Require().NoError(err)
	b, err := builder.Build(triangleRecords())
	s.Require().NoError(err)
	s.Equal(a.Nodes(), b.Nodes())
	s.Equal(a.Arcs(), b.Arcs())
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func TestWithLoggerNilPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithLogger(nil) })
}
