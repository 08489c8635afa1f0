// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: include each admissible pair independently with probability p.
//   - Undirected: unordered pairs {i,j}, i<j.
//   - Directed: ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Because vertices are implicit, an index that draws no edge is absent from
// the resulting graph. Results may be disconnected, which is what search
// tests for the not-found outcome want.
//
// Determinism: trial order is i asc, j asc; fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// keep decides one Bernoulli trial; p ∈ {0,1} never touches the RNG.
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed := g.Directed()
		var i, j int
		for i = 0; i < n; i++ {
			j = 0
			if !directed {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
