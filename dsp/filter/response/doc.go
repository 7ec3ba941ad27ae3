// Package response evaluates digital transfer functions on a frequency
// grid: magnitude in dB, unwrapped phase in degrees and group delay in
// samples.
//
// Three evaluators share the [Curve] result type:
//
//   - [Evaluate] uses Horner's method on the expanded coefficients,
//   - [EvaluateZPK] multiplies root factors and stays accurate at high
//     orders and low cutoffs where expanded polynomials lose precision,
//   - [Uniform] uses zero-padded FFTs of the coefficients on a uniform grid.
//
// Group delay is computed analytically from the polynomial derivatives.
// Points where the transfer function vanishes get NaN group delay; magnitudes
// below [MinMagnitudeDB] are clamped to it. Both count as degenerate points.
package response
