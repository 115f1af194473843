// SPDX-License-Identifier: MIT

package twinwidth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/tnorm"
)

// Compute returns the fuzzy twin-width of g under the t-norm family k.
//
// Stage 1 (Validate): nil graph, unknown kind and the size limit.
// Stage 2 (Trivial): no vertices → Undefined; one vertex → width 0 with a
// single empty sequence.
// Stage 3 (Search): depth-first over all label-ordered pairs of remaining
// vertices, sequentially or per top-level branch on Options.Workers
// goroutines.
//
// Errors: ErrGraphNil, tnorm.ErrUnknownKind, ErrTooLarge.
func Compute(g *core.Graph, k tnorm.Kind, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if !k.Valid() {
		return Result{}, fmt.Errorf("twinwidth: %w: %q", tnorm.ErrUnknownKind, string(k))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()
	if o.MaxVertices > 0 && n > o.MaxVertices {
		return Result{}, fmt.Errorf("twinwidth: %d vertices > limit %d: %w", n, o.MaxVertices, ErrTooLarge)
	}

	switch n {
	case 0:
		return undefined(), nil
	case 1:
		return Result{Width: 0, Sequences: [][]Step{{}}}, nil
	}

	var (
		acc *accumulator
		err error
	)
	if o.Workers > 1 {
		acc, err = searchParallel(g, k, o)
	} else {
		e := newEngine(k, o, n-1)
		err = e.search(g, 0)
		acc = &e.acc
	}
	if err != nil {
		return Result{}, err
	}

	return acc.result(), nil
}

// accumulator keeps every recorded sequence whose width is within eps of
// the smallest width recorded so far.
type accumulator struct {
	eps    float64
	best   float64
	widths []float64
	seqs   [][]Step
}

func newAccumulator(eps float64) accumulator {
	return accumulator{eps: eps, best: math.Inf(1)}
}

// record adds seq with width w. seq is stored as given.
func (a *accumulator) record(w float64, seq []Step) {
	if w > a.best+a.eps {
		return
	}
	if w < a.best {
		a.best = w
		a.filter()
	}
	a.widths = append(a.widths, w)
	a.seqs = append(a.seqs, seq)
}

// absorb replays other's entries in order.
func (a *accumulator) absorb(other *accumulator) {
	for i, w := range other.widths {
		a.record(w, other.seqs[i])
	}
}

// filter drops entries that are no longer within eps of best.
func (a *accumulator) filter() {
	kept := 0
	for i, w := range a.widths {
		if w <= a.best+a.eps {
			a.widths[kept], a.seqs[kept] = w, a.seqs[i]
			kept++
		}
	}
	a.widths, a.seqs = a.widths[:kept], a.seqs[:kept]
}

// cut reports whether a branch with running width r can be discarded.
func (a *accumulator) cut(r float64) bool { return r > a.best+a.eps }

func (a *accumulator) result() Result {
	if len(a.seqs) == 0 {
		return undefined()
	}

	return Result{Width: a.best, Sequences: a.seqs}
}

// engine holds the state of one depth-first search. It is not shared
// between goroutines.
type engine struct {
	k     tnorm.Kind
	prune bool
	path  []Step // path[0:depth]
	acc   accumulator
}

func newEngine(k tnorm.Kind, o Options, steps int) *engine {
	return &engine{
		k:     k,
		prune: o.Pruning,
		path:  make([]Step, 0, steps),
		acc:   newAccumulator(o.Epsilon),
	}
}

// search explores every completion of e.path from g, whose running width
// so far is running.
func (e *engine) search(g *core.Graph, running float64) error {
	ids := g.Vertices()
	if len(ids) == 1 {
		seq := make([]Step, len(e.path))
		copy(seq, e.path)
		e.acc.record(running, seq)
		return nil
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			m, r, err := e.step(g, ids[i], ids[j], running)
			if err != nil {
				return err
			}
			if e.prune && e.acc.cut(r) {
				continue
			}
			e.path = append(e.path, Step{U: ids[i], V: ids[j]})
			err = e.search(m, r)
			e.path = e.path[:len(e.path)-1]
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// step merges u and v and returns the snapshot with its running width.
func (e *engine) step(g *core.Graph, u, v core.VertexID, running float64) (*core.Graph, float64, error) {
	m, err := g.MergeVertices(u, v, e.k)
	if err != nil {
		return nil, 0, fmt.Errorf("twinwidth: merge %s,%s: %w", u, v, err)
	}

	return m, math.Max(running, m.MaxErrorDegree()), nil
}
