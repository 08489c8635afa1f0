// Package builder generates deterministic weighted graph fixtures for tests,
// examples and benchmarks of the search strategies.
//
// Components:
//
//   - Constructor / BuildGraph: compose topology closures onto a fresh core.Graph.
//   - Topologies: Path, Cycle, Star, Grid, Complete, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn.
//   - Edge-weight generators (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//
// Vertices in core are implicit, so every constructor emits edges only; a
// vertex exists once an edge names it.
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical graph, including neighbor order.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
package builder
