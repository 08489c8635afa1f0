// Package parse turns user input into search problems.
//
// Edge text is what the interactive prompt and the --edges flag accept:
//
//	A,B=3+C,D=2
//
// Pieces are separated by '+'; each piece is "node,node=weight" with optional
// spaces around ',' and '='. Node IDs are word characters and weights are
// non-negative decimal integers.
//
// Problem files carry the same information in YAML:
//
//	directed: false
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: A, to: C, weight: 2}
//	start: A
//	goals: [D]
//	algorithm: UCS
//
// Parsing never returns partial results: the first malformed piece fails the
// whole call.
package parse
