// Package tsvdparity checks that two truncated SVD implementations produce
// the same answer on the same data, within a tolerance.
//
// What is inside?
//
//	A small benchmarking harness built around an approximate equality check:
//		• Normalization: dense arrays, column frames, device-resident frames
//		  and scalars all become one row-major array (one device copy each)
//		• Equivalence: mean squared error strictly below a threshold, with an
//		  optional sign-insensitive mode for singular vectors
//		• Providers: direct thin SVD (reference) and Gram-matrix eigensolver
//		  (candidate), both on gonum
//		• Datasets: NumPy .npz archives, resolved by path or doublestar glob
//
// Layout:
//
//	matrix/        dense rank-1/rank-2 array, validators, element-wise kernels
//	artifact/      output representations + Normalize
//	compare/       Check, options, named reports
//	dataset/       Resolve, Load, Generate, Save
//	tsvd/          Decomposer, SVD, Gram, Lookup
//	bench/         Runner: fit both, compare every attribute
//	config/        YAML configuration and logger setup
//	internal/cli/  cobra commands: run, gen, compare
//
// Quick example:
//
//	res, _ := compare.Check(ref.Components, cand.Components, compare.WithoutSign())
//	fmt.Println(res.Verdict()) // equal
//
//	go install github.com/katalvlaran/tsvdparity/cmd/tsvdparity@latest
package tsvdparity
