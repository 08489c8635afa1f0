// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits every unordered pair {i<j} in (i asc, j asc) order; directed
//     graphs also get j→i right after i→j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		directed := g.Directed()
		var (
			i, j int
			u, v string
		)
		for i = 0; i < n; i++ {
			u = cfg.idFn(i)
			for j = i + 1; j < n; j++ {
				v = cfg.idFn(j)
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
				if directed {
					if err := addEdge(g, cfg, methodComplete, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
