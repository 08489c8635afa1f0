// File: edges.go
// Role: Edge, start and goal text parsing for the interactive prompt and flags.

package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
)

// Sentinel errors for text input.
var (
	// ErrInvalidEdges indicates edge text that does not match node,node=weight.
	ErrInvalidEdges = errors.New("parse: invalid edges")

	// ErrEmptyStart indicates a blank start node.
	ErrEmptyStart = errors.New("parse: empty start node")

	// ErrEmptyGoals indicates a blank goal list or a blank goal within it.
	ErrEmptyGoals = errors.New("parse: empty goal nodes")
)

// EdgeSeparator joins edge pieces in edge text.
const EdgeSeparator = "+"

// Node IDs are Unicode letters, digits and underscores; weights are ASCII digits.
var edgeRe = regexp.MustCompile(`^([\p{L}\p{N}_]+)\s*,\s*([\p{L}\p{N}_]+)\s*=\s*([0-9]+)$`)

// Edges parses "A,B=3+C,D=2" into edges in the order written. Node IDs may
// use any Unicode letter or digit, so "Ä,城=1" is accepted.
//
// Errors:
//   - ErrInvalidEdges for blank text, a malformed piece, or a weight that
//     overflows int64. The message names the offending piece.
func Edges(text string) ([]core.Edge, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: no edges given", ErrInvalidEdges)
	}

	pieces := strings.Split(text, EdgeSeparator)
	edges := make([]core.Edge, 0, len(pieces))
	for i, piece := range pieces {
		piece = strings.TrimSpace(piece)
		m := edgeRe.FindStringSubmatch(piece)
		if m == nil {
			return nil, fmt.Errorf("%w: piece %d %q", ErrInvalidEdges, i+1, piece)
		}
		w, err := strconv.ParseInt(m[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d weight %q: %v", ErrInvalidEdges, i+1, m[3], err)
		}
		edges = append(edges, core.Edge{From: m[1], To: m[2], Weight: w})
	}

	return edges, nil
}

// FormatEdges is the inverse of Edges.
func FormatEdges(edges []core.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("%s,%s=%d", e.From, e.To, e.Weight)
	}

	return strings.Join(parts, EdgeSeparator)
}

// Start trims s and rejects it when blank.
func Start(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyStart
	}

	return s, nil
}

// Goals splits "A, B ,C" on commas and trims every entry. Order is kept.
func Goals(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyGoals
	}
	parts := strings.Split(s, ",")
	goals := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: blank entry in %q", ErrEmptyGoals, s)
		}
		goals = append(goals, p)
	}

	return goals, nil
}
