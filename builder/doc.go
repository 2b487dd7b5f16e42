// Package builder synthesizes commuting-flow adjacency matrices for tests,
// benchmarks, and the `ttwa generate` CLI subcommand.
//
// A Constructor is a closure that fills in the rows of an N×N int64 matrix
// given a resolved config (RNG, max weight). Build applies functional
// Options (WithSeed, WithRand, WithMaxWeight) over sensible defaults and
// then runs the Constructor, the same two-stage "resolve options, then
// run a pure closure" shape used throughout this corpus for deterministic,
// reproducible generators.
package builder
