// Package linalg provides the matrix routines used by the outer
// optimization loops: Gram-Schmidt orthogonalization, nuclear norm,
// vector projection, rotation, and the PowerMethod spectral-radius
// estimator.
//
// All functions are pure and allocate their results. PowerMethod is the
// exception: it owns a private iteration state that is advanced in place
// by successive [PowerMethod.Converge] calls, and a single instance must
// not be shared between goroutines.
//
// # Usage
//
// Estimating the spectral radius of a linear operator:
//
//	pm := linalg.NewPowerMethod(op, 64, 64)
//	step := pm.InvSpecRad() // gradient-step scaling for the caller
//
// The operator is any value with an Apply(*grid.Grid) *grid.Grid method;
// closures adapt via [OperatorFunc]:
//
//	op := linalg.OperatorFunc(func(x *grid.Grid) *grid.Grid {
//		return applyAThenAT(x)
//	})
package linalg
