package index

import "errors"

// Sentinel errors whose messages become the message of an errs.Error of
// kind InvariantViolation. The sentinel itself is not wrapped as the
// cause, so errors.Is does not match these values. They should be
// unreachable in correct code; their only purpose is to give a bug report
// something specific to name.
var (
	// ErrCursorNotSet indicates DeleteLast was called with no prior
	// successful SelectLargest/SelectNextLargest call.
	ErrCursorNotSet = errors.New("index: delete-last called with no cursor set")
	// ErrDanglingGroup indicates the forward index is missing a group the
	// cursor or reverse index still references.
	ErrDanglingGroup = errors.New("index: group referenced by cursor or reverse index is missing from forward index")
	// ErrDanglingRecord indicates the reverse index is missing a record
	// the forward index still references.
	ErrDanglingRecord = errors.New("index: record referenced by forward index is missing from reverse index")
	// ErrSpecificityDropsRecord indicates incrementing arity would orphan
	// a training record that every classify field is already exhausted
	// for, destroying training signal rather than just refining it.
	ErrSpecificityDropsRecord = errors.New("index: specificity increment would drop a training record entirely")
	// ErrSpecificityEmpty indicates a specificity increment produced no
	// groups at all, which should be unreachable given the drop check
	// above catches every record-losing case first.
	ErrSpecificityEmpty = errors.New("index: specificity increment produced an empty index")
)
