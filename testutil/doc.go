// Package testutil provides testing utilities for kdgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets and computing exact
// nearest neighbours by brute force.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 0, 100) // float64 coordinates in [0, 100)
//	grid := rng.GridPoints(1000, 10)       // int coordinates in [0, 10), many duplicates
//
// # Exact Search (Ground Truth)
//
//	want := testutil.BruteForceKNN(pts, query, k)
package testutil
