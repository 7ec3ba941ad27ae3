// Package biquad describes second-order IIR sections: their coefficients,
// frequency response and pole/zero locations.
//
// [FromZPK] splits a digital filter in factored form into a cascade of
// sections, pairing conjugate poles and zeros the way second-order-section
// exports do. Cascades of sections stay accurate at orders and cutoffs where
// a single expanded transfer function loses precision.
package biquad
