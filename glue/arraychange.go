package glue

import (
	"slices"
	"sort"

	"go.uber.org/zap"
)

// ArrayModification replaces the elements Old, starting at index At, with New.
type ArrayModification[E any] struct {
	At  int
	Old []E
	New []E
}

func InsertAt[E any](e E, at int) ArrayModification[E] {
	return ArrayModification[E]{At: at, New: []E{e}}
}

func RemoveAt[E any](e E, at int) ArrayModification[E] {
	return ArrayModification[E]{At: at, Old: []E{e}}
}

func ReplaceAt[E any](old E, at int, new E) ArrayModification[E] {
	return ArrayModification[E]{At: at, Old: []E{old}, New: []E{new}}
}

func ReplaceSlice[E any](old []E, at int, new []E) ArrayModification[E] {
	return ArrayModification[E]{At: at, Old: old, New: new}
}

// Delta is the change in length caused by m.
func (m ArrayModification[E]) Delta() int {
	return len(m.New) - len(m.Old)
}

func (m ArrayModification[E]) isEmpty() bool {
	return len(m.Old) == 0 && len(m.New) == 0
}

// end is the index just past the elements m inserted.
func (m ArrayModification[E]) end() int {
	return m.At + len(m.New)
}

// ArrayChange describes how an array of InitialCount elements changed.
//
// Modifications are sorted by index and never overlap or touch. Each index
// is expressed in the array as it is after every modification before it has
// been applied, so applying them one after the other, left to right,
// reproduces the change.
type ArrayChange[E any] struct {
	initialCount int
	mods         []ArrayModification[E]
}

// NewArrayChange returns the change made by applying mods, in order, to an
// array of initialCount elements.
func NewArrayChange[E any](initialCount int, mods ...ArrayModification[E]) ArrayChange[E] {
	c := ArrayChange[E]{initialCount: initialCount}
	for _, m := range mods {
		c.Add(m)
	}
	return c
}

func (c ArrayChange[E]) InitialCount() int {
	return c.initialCount
}

func (c ArrayChange[E]) FinalCount() int {
	n := c.initialCount
	for _, m := range c.mods {
		n += m.Delta()
	}
	return n
}

func (c ArrayChange[E]) IsEmpty() bool {
	return len(c.mods) == 0
}

// Modifications returns the modifications in application order. The result
// must not be modified.
func (c ArrayChange[E]) Modifications() []ArrayModification[E] {
	return c.mods
}

// Add appends m to the change. m.At is an index into the array produced by
// the change so far. Modifications that overlap or touch m are fused with it.
func (c *ArrayChange[E]) Add(m ArrayModification[E]) {
	if m.isEmpty() {
		return
	}
	s, e := m.At, m.At+len(m.Old)
	if s < 0 || e > c.FinalCount() {
		defect("array modification out of range",
			zap.Int("at", m.At), zap.Int("removed", len(m.Old)), zap.Int("count", c.FinalCount()))
	}
	delta := m.Delta()

	lo := sort.Search(len(c.mods), func(k int) bool { return c.mods[k].end() >= s })
	hi := lo
	for hi < len(c.mods) && c.mods[hi].At <= e {
		hi++
	}
	for k := hi; k < len(c.mods); k++ {
		c.mods[k].At += delta
	}

	if lo == hi {
		c.mods = slices.Insert(c.mods, lo, ArrayModification[E]{
			At:  s,
			Old: slices.Clone(m.Old),
			New: slices.Clone(m.New),
		})
		return
	}

	first, last := c.mods[lo], c.mods[hi-1]
	start := min(s, first.At)
	lastEnd := last.end()
	end := max(e, lastEnd)

	// Everything in [start, end) that is not covered by an existing
	// modification lies inside [s, e), so m.Old holds its original value.
	var old []E
	pos := start
	for _, k := range c.mods[lo:hi] {
		if pos < k.At {
			old = append(old, m.Old[pos-s:k.At-s]...)
		}
		old = append(old, k.Old...)
		pos = k.end()
	}
	if pos < end {
		old = append(old, m.Old[pos-s:end-s]...)
	}

	var inserted []E
	if first.At < s {
		inserted = append(inserted, first.New[:s-first.At]...)
	}
	inserted = append(inserted, m.New...)
	if lastEnd > e {
		inserted = append(inserted, last.New[len(last.New)-(lastEnd-e):]...)
	}

	fused := ArrayModification[E]{At: start, Old: old, New: inserted}
	if fused.isEmpty() {
		c.mods = slices.Delete(c.mods, lo, hi)
		return
	}
	c.mods = slices.Replace(c.mods, lo, hi, fused)
}

// Merged returns the change equivalent to c followed by next.
func (c ArrayChange[E]) Merged(next ArrayChange[E]) ArrayChange[E] {
	if c.FinalCount() != next.initialCount {
		defect("merging array changes with mismatched counts",
			zap.Int("final", c.FinalCount()), zap.Int("initial", next.initialCount))
	}
	result := ArrayChange[E]{initialCount: c.initialCount, mods: slices.Clone(c.mods)}
	for _, m := range next.mods {
		result.Add(m)
	}
	return result
}

// Reversed returns the change that undoes c.
func (c ArrayChange[E]) Reversed() ArrayChange[E] {
	result := ArrayChange[E]{initialCount: c.FinalCount()}
	shift := 0
	for _, m := range c.mods {
		result.mods = append(result.mods, ArrayModification[E]{At: m.At - shift, Old: m.New, New: m.Old})
		shift += m.Delta()
	}
	return result
}

// Apply applies c to elems and returns the result. The backing array of
// elems is reused when it is large enough.
func (c ArrayChange[E]) Apply(elems []E) []E {
	if len(elems) != c.initialCount {
		defect("applying array change to an array of the wrong size",
			zap.Int("count", len(elems)), zap.Int("expected", c.initialCount))
	}
	for _, m := range c.mods {
		elems = slices.Replace(elems, m.At, m.At+len(m.Old), m.New...)
	}
	return elems
}
