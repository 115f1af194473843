// SPDX-License-Identifier: MIT

package twinwidth

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/tnorm"
)

// searchParallel runs one engine per top-level pair on at most o.Workers
// goroutines and absorbs the branch accumulators in pair order.
func searchParallel(g *core.Graph, k tnorm.Kind, o Options) (*accumulator, error) {
	ids := g.Vertices()
	var pairs []Step
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, Step{U: ids[i], V: ids[j]})
		}
	}

	branches := make([]*accumulator, len(pairs))
	var eg errgroup.Group
	eg.SetLimit(o.Workers)
	for idx, p := range pairs {
		idx, p := idx, p
		eg.Go(func() error {
			e := newEngine(k, o, len(ids)-1)
			m, r, err := e.step(g, p.U, p.V, 0)
			if err != nil {
				return err
			}
			e.path = append(e.path, p)
			if err = e.search(m, r); err != nil {
				return err
			}
			branches[idx] = &e.acc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	acc := newAccumulator(o.Epsilon)
	for _, b := range branches {
		acc.absorb(b)
	}

	return &acc, nil
}
