// Package index implements TrainingIndex, the dual index that drives rule
// discovery for one label class: a forward map from predicate groups to
// the training records they currently cover, and a reverse map from each
// record back to the groups covering it.
//
// The two maps mirror each other the way an adjacency list mirrors a
// graph's edges, except the relation here is bipartite — predicate groups
// on one side, training records on the other, with "covers" as the edge.
// Deleting a group must walk every record it covered and, through the
// reverse map, prune it out of every other group that also covered it;
// that coordinated multi-entry update is the reason the index keeps an
// explicit cursor + ignore-set protocol rather than exposing a standard
// iterator, which a delete would invalidate mid-walk.
//
// Records are stored once in an owned arena and referenced by integer
// handle from both maps, so deleting a record from one group's member set
// never risks dropping the only copy of the record itself.
//
// None of this is safe for concurrent use, and none of it needs to be: a
// TrainingIndex has exactly one owner (the Inducer) for its entire
// lifetime, and every mutating method here runs to completion before
// control returns to the caller.
package index
