// Package crewpath generates the crew segment paths of a rail network: for
// every crew segment, every tied minimum-distance route from home to away,
// each paired with its mirror-image reverse route.
//
// Generate runs allpaths.Search once per crew segment, in crew segment ID
// order, and numbers the resulting paths sequentially. The forward member of
// a pair gets the even ID 2k and its reverse the odd ID 2k+1. The reverse of
// a path P is built by mapping every arc of P to its paired reverse arc and
// reversing the order, so it runs away→home over the same track.
//
// Invariants of a PathSet:
//
//   - Path(Path(id).Reverse).Reverse == id, and a path is never its own reverse.
//   - Both members of a pair name the same crew segment.
//   - Reverse(p).Arcs == [reverse(a) for a in reversed(p.Arcs)].
//
// Parallelism: the searches are independent and only read the network.
// WithWorkers(n) spreads them over n goroutines; IDs are handed out after
// all searches finish, so the output is identical to a sequential run.
package crewpath
