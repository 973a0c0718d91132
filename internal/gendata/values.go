package gendata

import (
	"math/rand"
	"strconv"
)

// ValueRule produces the next value for one field of a generated record.
// Implementations are stateful: Incremental advances a counter, the others
// draw from *rand.Rand supplied at construction time.
type ValueRule interface {
	NextValue() string
}

// Equal chooses among a fixed set of values with equal probability. A
// value inserted more than once is proportionally more likely to be
// chosen, matching DataElementValuesEqual's undeduplicated list.
type Equal struct {
	values []string
	rng    *rand.Rand
}

func NewEqual(rng *rand.Rand, values ...string) *Equal {
	return &Equal{values: values, rng: rng}
}

func (e *Equal) NextValue() string {
	if len(e.values) == 0 {
		return ""
	}
	return e.values[e.rng.Intn(len(e.values))]
}

// Weighted chooses among values with the supplied relative probabilities.
// Weights need not sum to one; they are normalized on first use and the
// normalized cumulative weights are cached. A weight that is not positive
// drops its value from the pool entirely, matching DataElementValuesDist.
type Weighted struct {
	values    []string
	weights   []float64
	cumulated []float64
	rng       *rand.Rand
}

func NewWeighted(rng *rand.Rand) *Weighted {
	return &Weighted{rng: rng}
}

func (w *Weighted) Insert(value string, weight float64) {
	if weight <= 0 {
		return
	}
	w.values = append(w.values, value)
	w.weights = append(w.weights, weight)
	w.cumulated = nil
}

func (w *Weighted) NextValue() string {
	if len(w.values) == 0 {
		return ""
	}
	if w.cumulated == nil {
		w.normalize()
	}
	target := w.rng.Float64()
	for i, c := range w.cumulated {
		if target <= c {
			return w.values[i]
		}
	}
	return w.values[len(w.values)-1]
}

func (w *Weighted) normalize() {
	var total float64
	for _, x := range w.weights {
		total += x
	}
	w.cumulated = make([]float64, len(w.weights))
	var soFar float64
	for i, x := range w.weights {
		soFar += x
		w.cumulated[i] = soFar / total
	}
}

// Incremental returns successive integers starting at seed. It is not
// safe for concurrent use and, as in the original, two Incrementals with
// overlapping ranges will collide.
type Incremental struct {
	next int
}

func NewIncremental(seed int) *Incremental {
	return &Incremental{next: seed}
}

func (g *Incremental) NextValue() string {
	v := g.next
	g.next++
	return strconv.Itoa(v)
}

// RandomRange chooses uniformly among the integers from lower to upper
// inclusive, stepping by step. A malformed range (upper below lower, or a
// non-positive step) is corrected the way RandomRange.java corrects it
// rather than rejected, since this is test-data plumbing, not an
// input-validation boundary.
type RandomRange struct {
	start int
	step  int
	count int
	rng   *rand.Rand
}

func NewRandomRange(rng *rand.Rand, lower, upper, step int) *RandomRange {
	if upper < lower {
		lower, upper = upper, lower
	}
	if step < 1 {
		step = 1
	}
	return &RandomRange{
		start: lower,
		step:  step,
		count: (upper-lower)/step + 1,
		rng:   rng,
	}
}

func (r *RandomRange) NextValue() string {
	v := r.start
	if r.count > 0 {
		v += r.rng.Intn(r.count) * r.step
	}
	return strconv.Itoa(v)
}
