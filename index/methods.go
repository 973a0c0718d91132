package index

import (
	"github.com/katalvlaran/ruleforge/errs"
	"github.com/katalvlaran/ruleforge/predicate"
)

// IsEmpty reports whether the forward index has no groups left to process.
func (idx *TrainingIndex) IsEmpty() bool { return len(idx.forward) == 0 }

// OneFiltersAllFields reports whether the current arity already equals the
// number of classify fields, meaning no further specificity increment is
// possible without dropping training signal.
func (idx *TrainingIndex) OneFiltersAllFields() bool {
	return idx.arity >= len(idx.classifyFields)
}

// HasGroup reports whether g exists as a forward-index key, i.e. whether g
// still covers at least one record in this index.
func (idx *TrainingIndex) HasGroup(g predicate.Group) bool {
	_, ok := idx.forward[g.Key()]
	return ok
}

// SelectLargest resets the ignore set and cursor, then returns the group
// covering the most records. The bool result is false iff the index is
// empty.
func (idx *TrainingIndex) SelectLargest() (predicate.Group, bool) {
	idx.ignore = make(map[string]bool)
	idx.cursorSet = false
	return idx.SelectNextLargest()
}

// SelectNextLargest adds the current cursor (if any) to the ignore set,
// then returns the largest group not on the ignore set. The bool result
// is false iff every group is ignored or the index is empty.
func (idx *TrainingIndex) SelectNextLargest() (predicate.Group, bool) {
	if idx.cursorSet {
		idx.ignore[idx.cursor] = true
		idx.cursorSet = false
	}

	if len(idx.forward) == 0 || len(idx.ignore) >= len(idx.forward) {
		return predicate.Group{}, false
	}

	var bestKey string
	bestSize := -1
	for key, e := range idx.forward {
		if idx.ignore[key] {
			continue
		}
		if len(e.members) > bestSize {
			bestSize = len(e.members)
			bestKey = key
		}
	}
	if bestSize < 0 {
		// len(ignore) < len(forward) guaranteed at least one candidate above.
		return predicate.Group{}, false
	}

	idx.cursor = bestKey
	idx.cursorSet = true
	return idx.forward[bestKey].group, true
}

// DeleteLast removes the group last returned by SelectLargest/
// SelectNextLargest, together with every record it covered, pruning those
// records out of every other group that also covered them and dropping
// any group left with no records. It then returns
// SelectNextLargest()'s result, so callers can drive the induction loop
// with one call per iteration.
//
// DeleteLast requires a cursor to be set; calling it without one first
// selecting a group is a programming error surfaced as an
// InvariantViolation, same as any other inconsistency it detects along
// the way.
func (idx *TrainingIndex) DeleteLast() (predicate.Group, bool, error) {
	if !idx.cursorSet {
		return predicate.Group{}, false, errs.Invariant(ErrCursorNotSet.Error())
	}
	key := idx.cursor
	e, ok := idx.forward[key]
	if !ok {
		return predicate.Group{}, false, errs.Invariant(ErrDanglingGroup.Error())
	}

	delete(idx.forward, key)
	delete(idx.ignore, key)

	for id := range e.members {
		covering, ok := idx.reverse[id]
		if !ok {
			return predicate.Group{}, false, errs.Invariant(ErrDanglingRecord.Error())
		}
		for otherKey := range covering {
			if otherKey == key {
				continue
			}
			other, ok := idx.forward[otherKey]
			if !ok {
				return predicate.Group{}, false, errs.Invariant(ErrDanglingGroup.Error())
			}
			delete(other.members, id)
			if len(other.members) == 0 {
				delete(idx.forward, otherKey)
				delete(idx.ignore, otherKey)
			}
		}
		delete(idx.reverse, id)
	}

	idx.cursorSet = false
	g, ok := idx.SelectNextLargest()
	return g, ok, nil
}

// IncrArity rebuilds the forward and reverse indexes so every group has
// arity+1 predicates while still covering exactly the records it covered
// before, by extending each covered record's group with every classify
// field strictly greater than the group's current last field. If, for any
// covered record, no such field exists and the group does not yet span
// every classify field, that record's coverage by this particular group
// simply ends (another, more specific group already covers it from a
// different path); if no such field exists and the group already spans
// every classify field, the record would be dropped from the index
// entirely and the whole operation aborts, leaving the index unchanged.
func (idx *TrainingIndex) IncrArity() error {
	newForward := make(map[string]*entry, len(idx.forward))
	newReverse := make(map[recordID]map[string]bool, len(idx.reverse))

	insertNew := func(group predicate.Group, id recordID) {
		key := group.Key()
		e, ok := newForward[key]
		if !ok {
			e = &entry{group: group, members: make(map[recordID]struct{})}
			newForward[key] = e
		}
		e.members[id] = struct{}{}
		set, ok := newReverse[id]
		if !ok {
			set = make(map[string]bool)
			newReverse[id] = set
		}
		set[key] = true
	}

	for _, e := range idx.forward {
		lastField := e.group.LastField()
		var nextFields []predicate.Field
		for _, f := range idx.classifyFields {
			if f > lastField {
				nextFields = append(nextFields, f)
			}
		}

		for id := range e.members {
			if len(nextFields) == 0 {
				if e.group.Arity() == len(idx.classifyFields) {
					return errs.Invariant(ErrSpecificityDropsRecord.Error())
				}
				continue
			}
			row := []string(idx.records[id])
			for _, f := range nextFields {
				p, err := predicate.FromRecord(row, f)
				if err != nil {
					return errs.Invariant(err.Error())
				}
				extended, err := e.group.Extend(p)
				if err != nil {
					return errs.Invariant(err.Error())
				}
				insertNew(extended, id)
			}
		}
	}

	if len(newForward) == 0 {
		return errs.Invariant(ErrSpecificityEmpty.Error())
	}

	idx.forward = newForward
	idx.reverse = newReverse
	idx.ignore = make(map[string]bool)
	idx.cursorSet = false
	idx.arity++
	return nil
}
