// Package builder turns tokenized rail records into a frozen network.Network.
//
// The package consumes four ordered record streams, each record a tuple of
// string fields in a fixed order (see the FieldsX constants):
//
//   - node:         code; block swap cost
//   - car block:    code; origin; destination; # of cars; length (feet);
//     tonnage (tons); shortest distance (miles)
//   - arc:          origin; destination; distance (miles);
//     max train length (feet); max tonnage (tons); max # of trains
//   - crew segment: home; away
//
// Build processes them in the order nodes, car blocks, arcs, crew segments.
// Nodes receive IDs 0,1,2,... in input order. Every arc record yields an arc
// and its reverse; both share the distance and capacity limits. Mile values
// go through the distance codec, so "1.0005" aborts the build with
// distance.ErrExcessPrecision.
//
// Every node reference is resolved against the codes declared so far. A
// reference to an unknown code aborts the build with an
// *UnknownNodeReferenceError that names the record kind, the role of the
// field (origin, destination, home, away), the whole record and the code.
//
// Guarantees:
//
//   - All-or-nothing: on any error Build returns a nil network.
//   - Determinism: identical records always yield identical IDs.
//   - Build never panics on bad input; option constructors panic on
//     meaningless values (WithLogger(nil)).
package builder
