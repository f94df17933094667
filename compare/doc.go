// Package compare decides whether two numeric artifacts produced by
// independent decomposition implementations agree.
//
// Two implementations of the same decomposition (a direct method and an
// iterative one, or two numerical libraries) never agree bit for bit. Check
// therefore reduces the difference to one number, the mean squared error
// over all elements, and accepts the pair when it is strictly below a
// threshold (default 5e-3).
//
// Singular vectors are only defined up to sign: v and -v are both valid. Pass
// WithoutSign() to compare absolute values for components and transformed
// matrices; keep the default for singular values, which are non-negative.
//
//	res, err := compare.Check(ref.Components, cand.Components, compare.WithoutSign())
//	if err != nil {
//		// matrix.ErrShapeMismatch, artifact.ErrUnsupportedType, artifact.ErrTransfer
//	}
//	fmt.Println("components:", res.Verdict())
//
// Shapes must match exactly after normalization. A mismatch is an error,
// never a silent pass or fail.
package compare
