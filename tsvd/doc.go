// Package tsvd provides truncated singular value decompositions behind one
// interface, so that two implementations can be run on the same input and
// their outputs compared attribute by attribute.
//
// Two providers are registered:
//
//	svd   direct thin SVD of X, host-resident results (the reference)
//	gram  eigendecomposition of XᵀX, device-mirrored results (the candidate)
//
// Both return singular values in descending order, components as rows of Vᵀ
// and the transformed input X·V_k. Singular vectors are determined only up
// to sign, so components and transformed outputs should be compared with
// compare.WithoutSign.
package tsvd
