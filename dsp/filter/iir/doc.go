// Package iir designs digital IIR filters and analyzes their frequency
// response.
//
// A [Spec] names a design family, an order, a band shape and its edges.
// [Design] turns it into a [Filter]: the normalized analog prototype is
// band-transformed at prewarped cutoffs and discretized with the bilinear
// transform, giving poles, zeros, gain and expanded transfer-function
// coefficients. [Analyze] additionally samples magnitude, unwrapped phase
// and group delay over a frequency grid.
//
// Each call is self-contained and returns fresh values, so the functions
// are safe for concurrent use.
//
// Errors come in three kinds. [ErrInvalidSpec] is fatal and no result is
// returned. [ErrNumericDegeneracy] and [ErrRootsNotConverged] are reported
// in the Warnings of a result that is still usable.
package iir
