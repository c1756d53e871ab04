package frontier

// RelationshipMapper is the per-edge vertex program RelationshipMap
// applies across a frontier's out-edges (sparse push) or in-edges
// (dense pull).
//
// Update is called once per (source, target) edge where source is a
// frontier member and Check(target) has not yet ruled target out; it
// applies the program's per-edge effect (e.g. a CAS write) and reports
// whether target should join the next frontier. Check is an
// early-termination predicate over target, consulted before (and, on
// the dense pull path, repeatedly during) the scan of target's
// in-edges; returning false lets the implementation skip remaining
// in-edges for that target.
//
// The three boolean hints let an implementation tell RelationshipMap
// that a method's result is constant, so the call can be skipped on
// the hot path. Embed BaseRelationshipMapper to default all three hints
// to false and Check to an always-true predicate, and override only
// what a given program needs.
type RelationshipMapper interface {
	Update(source, target uint64) bool
	Check(target uint64) bool

	// UpdateAlwaysReturnsTrue hints that Update's return value is
	// always true, so RelationshipMap accepts every edge it calls
	// Update on without reading the result.
	UpdateAlwaysReturnsTrue() bool

	// CheckAlwaysReturnsTrue hints that Check always passes (e.g. CC,
	// which has no early-termination condition).
	CheckAlwaysReturnsTrue() bool

	// HasNoResult hints that the next frontier produced by this
	// RelationshipMap call is never consulted, letting the
	// implementation skip building it entirely; RelationshipMap then
	// returns an empty frontier.
	HasNoResult() bool
}

// BaseRelationshipMapper supplies the default (conservative) hint
// implementations: Check always passes, and no hint fast path applies.
// Embed it in a RelationshipMapper implementation and override only the
// methods that differ.
type BaseRelationshipMapper struct{}

func (BaseRelationshipMapper) Check(uint64) bool            { return true }
func (BaseRelationshipMapper) UpdateAlwaysReturnsTrue() bool { return false }
func (BaseRelationshipMapper) CheckAlwaysReturnsTrue() bool  { return false }
func (BaseRelationshipMapper) HasNoResult() bool             { return false }

// NodeMapper is the per-vertex program NodeMap and NodeFilter apply to
// every member of a frontier.
type NodeMapper interface {
	// Update is called once per frontier member v. NodeMap ignores its
	// return value; NodeFilter keeps v in the output iff it is true.
	Update(v uint64) bool

	// UpdateAlwaysReturnsTrue hints that Update always returns true,
	// letting NodeFilter keep every member without reading Update's
	// result. Update is still invoked for its side effects, and
	// NodeFilter still returns a new frontier.
	UpdateAlwaysReturnsTrue() bool
}

// BaseNodeMapper supplies the default UpdateAlwaysReturnsTrue hint
// (false). Embed it in a NodeMapper implementation.
type BaseNodeMapper struct{}

func (BaseNodeMapper) UpdateAlwaysReturnsTrue() bool { return false }
