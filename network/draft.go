package network

import "fmt"

// Draft accumulates nodes, arcs, car blocks and crew segments before they
// are frozen into a Network.
type Draft struct {
	frozen bool

	nodes        []RailNode
	arcs         []RailArc
	carBlocks    []CarBlock
	crewSegments []CrewSegment
	codeIndex    map[string]int
}

// NewDraft returns an empty Draft.
func NewDraft() *Draft {
	return &Draft{codeIndex: make(map[string]int)}
}

// AddNode declares a rail node and returns its ID. IDs are handed out
// sequentially starting at 0.
//
// Errors: ErrFrozen, ErrEmptyCode, ErrDuplicateCode, ErrNegativeAttribute.
func (d *Draft) AddNode(code string, blockSwapCost int) (int, error) {
	if d.frozen {
		return 0, ErrFrozen
	}
	if code == "" {
		return 0, ErrEmptyCode
	}
	if _, dup := d.codeIndex[code]; dup {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateCode, code)
	}
	if blockSwapCost < 0 {
		return 0, fmt.Errorf("%w: node %q block swap cost %d", ErrNegativeAttribute, code, blockSwapCost)
	}

	id := len(d.nodes)
	d.nodes = append(d.nodes, RailNode{ID: id, Code: code, BlockSwapCost: blockSwapCost})
	d.codeIndex[code] = id

	return id, nil
}

// Lookup resolves a node code to its ID.
func (d *Draft) Lookup(code string) (int, bool) {
	id, ok := d.codeIndex[code]

	return id, ok
}

// AddArcPair allocates an arc origin→destination and its reverse
// destination→origin with identical attributes. The forward arc always gets
// the even ID, the reverse the following odd ID.
//
// Errors: ErrFrozen, ErrNodeNotFound, ErrNegativeAttribute.
func (d *Draft) AddArcPair(origin, destination int, attrs ArcAttributes) (fwd, rev int, err error) {
	if d.frozen {
		return 0, 0, ErrFrozen
	}
	if err = d.checkNode(origin); err != nil {
		return 0, 0, err
	}
	if err = d.checkNode(destination); err != nil {
		return 0, 0, err
	}
	if attrs.Distance < 0 || attrs.MaximumTrainLength < 0 ||
		attrs.MaximumTonnage < 0 || attrs.MaximumNumberOfTrains < 0 {
		return 0, 0, fmt.Errorf("%w: arc %s→%s %+v",
			ErrNegativeAttribute, d.nodes[origin].Code, d.nodes[destination].Code, attrs)
	}

	fwd = len(d.arcs)
	rev = fwd + 1
	d.arcs = append(d.arcs,
		RailArc{ID: fwd, Origin: origin, Destination: destination, ArcAttributes: attrs, Reverse: rev},
		RailArc{ID: rev, Origin: destination, Destination: origin, ArcAttributes: attrs, Reverse: fwd},
	)

	return fwd, rev, nil
}

// AddCarBlock declares a car block. The ID field of cb is ignored and
// replaced by the next sequential car block ID, which is returned.
//
// Errors: ErrFrozen, ErrNodeNotFound, ErrNegativeAttribute.
func (d *Draft) AddCarBlock(cb CarBlock) (int, error) {
	if d.frozen {
		return 0, ErrFrozen
	}
	if err := d.checkNode(cb.Origin); err != nil {
		return 0, err
	}
	if err := d.checkNode(cb.Destination); err != nil {
		return 0, err
	}
	if cb.NumberOfCars < 0 || cb.Length < 0 || cb.Tonnage < 0 || cb.ShortestDistance < 0 {
		return 0, fmt.Errorf("%w: car block %q", ErrNegativeAttribute, cb.Code)
	}

	cb.ID = len(d.carBlocks)
	d.carBlocks = append(d.carBlocks, cb)

	return cb.ID, nil
}

// AddCrewSegment declares a crew requirement between home and away.
//
// Errors: ErrFrozen, ErrNodeNotFound.
func (d *Draft) AddCrewSegment(home, away int) (int, error) {
	if d.frozen {
		return 0, ErrFrozen
	}
	if err := d.checkNode(home); err != nil {
		return 0, err
	}
	if err := d.checkNode(away); err != nil {
		return 0, err
	}

	id := len(d.crewSegments)
	d.crewSegments = append(d.crewSegments, CrewSegment{ID: id, Home: home, Away: away})

	return id, nil
}

// Freeze links every node to its originating arcs and returns the immutable
// Network. The Draft must not be used afterwards.
//
// Complexity: O(V + E).
func (d *Draft) Freeze() (*Network, error) {
	if d.frozen {
		return nil, ErrFrozen
	}
	d.frozen = true

	// 1) Count originating arcs per node so each list is allocated once.
	counts := make([]int, len(d.nodes))
	for i := range d.arcs {
		counts[d.arcs[i].Origin]++
	}
	for i := range d.nodes {
		d.nodes[i].Originating = make([]int, 0, counts[i])
	}

	// 2) Arc IDs are visited ascending, so every list ends up in allocation
	//    order: a forward arc sits before the reverse of any later pair.
	for i := range d.arcs {
		o := d.arcs[i].Origin
		d.nodes[o].Originating = append(d.nodes[o].Originating, d.arcs[i].ID)
	}

	n := &Network{
		nodes:        d.nodes,
		arcs:         d.arcs,
		carBlocks:    d.carBlocks,
		crewSegments: d.crewSegments,
		codeIndex:    d.codeIndex,
	}
	d.nodes, d.arcs, d.carBlocks, d.crewSegments, d.codeIndex = nil, nil, nil, nil, nil

	return n, nil
}

func (d *Draft) checkNode(id int) error {
	if id < 0 || id >= len(d.nodes) {
		return fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return nil
}
