// Package bench runs a reference and a candidate truncated SVD on the same
// input and checks each fitted attribute for equivalence.
package bench
