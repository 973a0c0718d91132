package index

import (
	"sort"

	"github.com/katalvlaran/ruleforge/errs"
	"github.com/katalvlaran/ruleforge/predicate"
	"github.com/katalvlaran/ruleforge/record"
)

// recordID is a stable handle into TrainingIndex's owned record arena.
// Both the forward and reverse maps reference records by this handle
// instead of by value, so a record is never duplicated or prematurely
// dropped while any group still covers it.
type recordID int

// entry is one forward-map value: the predicate group itself (so callers
// get back a real Group, not just a key) plus the set of record handles
// it currently covers.
type entry struct {
	group   predicate.Group
	members map[recordID]struct{}
}

// TrainingIndex is the bipartite forward/reverse index over one label
// class's training records, as described in package doc.go. All
// TrainingIndex instances derived from the same call site share identical
// ClassifyFields; Inducer is responsible for growing two of them (valid
// and invalid) in lock-step.
type TrainingIndex struct {
	records []record.Record // arena; records[id] is the row for recordID(id)

	forward map[string]*entry            // group key -> entry
	reverse map[recordID]map[string]bool // record id -> set of group keys covering it

	ignore    map[string]bool // group keys already returned this selection pass
	cursor    string          // last group key returned
	cursorSet bool

	classifyFields []predicate.Field // sorted, fixed for the index's lifetime
	arity          int               // predicate count shared by every current group
}

// New builds a TrainingIndex from records, which must be non-empty and of
// uniform arity (record.NewGroup already guarantees both). exclude names
// additional field indices to drop from classification on top of the
// implicit label field (the last field of every record). Passing nil
// excludes nothing beyond the label field.
func New(records *record.Group, exclude []predicate.Field) (*TrainingIndex, error) {
	if records == nil || len(records.Records) == 0 {
		return nil, errs.Input("training records must be non-empty", nil)
	}
	if records.Arity == 0 {
		return nil, errs.Input("training records must have at least one field", nil)
	}

	labelField := records.LabelField()
	excluded := make(map[predicate.Field]bool, len(exclude))
	for _, f := range exclude {
		excluded[f] = true
	}

	var classify []predicate.Field
	for f := 0; f < records.Arity; f++ {
		pf := predicate.Field(f)
		if f == labelField || excluded[pf] {
			continue
		}
		classify = append(classify, pf)
	}
	sort.Slice(classify, func(i, j int) bool { return classify[i] < classify[j] })
	if len(classify) == 0 {
		return nil, errs.Input("exclusion list for training data excludes all classify fields", nil)
	}

	idx := &TrainingIndex{
		records:        make([]record.Record, len(records.Records)),
		forward:        make(map[string]*entry),
		reverse:        make(map[recordID]map[string]bool),
		ignore:         make(map[string]bool),
		classifyFields: classify,
		arity:          1,
	}
	copy(idx.records, records.Records)

	for id := range idx.records {
		row := idx.records[id]
		for _, f := range idx.classifyFields {
			p, err := predicate.FromRecord([]string(row), f)
			if err != nil {
				return nil, err
			}
			idx.insert(predicate.Of(p), recordID(id))
		}
	}
	return idx, nil
}

// insert records that group currently covers id, creating the forward
// entry and/or reverse set as needed. Does not verify group actually
// passes records[id]; callers are trusted to only build groups from the
// record's own field values.
func (idx *TrainingIndex) insert(group predicate.Group, id recordID) {
	key := group.Key()
	e, ok := idx.forward[key]
	if !ok {
		e = &entry{group: group, members: make(map[recordID]struct{})}
		idx.forward[key] = e
	}
	e.members[id] = struct{}{}

	set, ok := idx.reverse[id]
	if !ok {
		set = make(map[string]bool)
		idx.reverse[id] = set
	}
	set[key] = true
}

// ClassifyFields returns the sorted fields considered for induction. The
// returned slice must not be mutated by the caller.
func (idx *TrainingIndex) ClassifyFields() []predicate.Field { return idx.classifyFields }

// Arity is the predicate count shared by every group currently in the
// index.
func (idx *TrainingIndex) Arity() int { return idx.arity }
