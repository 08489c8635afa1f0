// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub ID is the fixed CenterVertexID; leaves are cfg.idFn(1..n-1).
//   - Directed graphs get both spoke directions so every leaf stays reachable.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

// CenterVertexID is the hub of Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		var leaf string
		for i := 1; i < n; i++ {
			leaf = cfg.idFn(i)
			if err := addEdge(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
			if g.Directed() {
				if err := addEdge(g, cfg, methodStar, leaf, CenterVertexID); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
