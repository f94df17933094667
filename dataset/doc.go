// Package dataset locates and reads benchmark input matrices.
//
// Inputs are NumPy .npz archives, the format numpy.savez writes. Resolve
// turns a path or doublestar pattern into one file, Load reads a float
// array from it. Generate and Save exist for producing fixtures; they are
// never used as a fallback when a dataset is missing.
package dataset
