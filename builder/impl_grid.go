// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   - Vertex IDs use the fixed coordinate scheme "r,c", not cfg.idFn.
//   - For each cell in row-major order emit Right then Bottom; directed graphs
//     also get the reverse arc.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID formats a grid coordinate as "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}

		directed := g.Directed()
		link := func(u, v string) error {
			if err := addEdge(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if directed {
				return addEdge(g, cfg, methodGrid, v, u)
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
