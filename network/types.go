package network

import "errors"

// Sentinel errors for network operations.
var (
	// ErrEmptyCode indicates that a rail node was declared with an empty code.
	ErrEmptyCode = errors.New("network: node code is empty")

	// ErrDuplicateCode indicates that a rail node code was declared twice.
	ErrDuplicateCode = errors.New("network: duplicate node code")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrArcNotFound indicates an operation referenced a non-existent arc.
	ErrArcNotFound = errors.New("network: arc not found")

	// ErrCrewSegmentNotFound indicates an operation referenced a non-existent crew segment.
	ErrCrewSegmentNotFound = errors.New("network: crew segment not found")

	// ErrNegativeAttribute indicates a negative distance, cost or capacity.
	ErrNegativeAttribute = errors.New("network: negative attribute")

	// ErrDistanceOverflow indicates that a path distance exceeds int64.
	ErrDistanceOverflow = errors.New("network: path distance overflows int64")

	// ErrFrozen indicates a Draft was used after Freeze.
	ErrFrozen = errors.New("network: draft already frozen")
)

// RailNode is a location in the rail network.
type RailNode struct {
	// ID is the node's index in the network, assigned in declaration order.
	ID int

	// Code is the unique human-readable name of the node.
	Code string

	// BlockSwapCost is the cost of swapping a car block between trains here.
	BlockSwapCost int

	// Originating lists the IDs of the arcs leaving this node, in allocation order.
	Originating []int
}

// ArcAttributes are the values shared by an arc and its reverse.
type ArcAttributes struct {
	Distance              int64 // thousandths of a mile
	MaximumTrainLength    int   // feet
	MaximumTonnage        int   // tons
	MaximumNumberOfTrains int
}

// RailArc is a directed, weighted edge. Every arc has exactly one reverse arc.
type RailArc struct {
	ID          int
	Origin      int
	Destination int

	ArcAttributes

	// Reverse is the ID of the paired arc running Destination→Origin.
	Reverse int
}

// CarBlock is a unit of freight moving from Origin to Destination.
type CarBlock struct {
	ID           int
	Code         string
	Origin       int
	Destination  int
	NumberOfCars int
	Length       int // feet
	Tonnage      int // tons

	// ShortestDistance is an input datum in thousandths of a mile; it is not
	// computed from the network.
	ShortestDistance int64
}

// CrewSegment is a crew requirement between a home node and an away node.
type CrewSegment struct {
	ID   int
	Home int
	Away int
}
