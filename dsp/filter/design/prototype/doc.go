// Package prototype generates normalized analog lowpass prototypes.
//
// Every family produces a [zpk.ZPK] in the s-plane with its passband edge at
// 1 rad/s (Bessel: see [BesselNorm]) and unity gain at DC, except for even
// order Chebyshev I and elliptic prototypes whose DC gain sits at the bottom
// of the passband ripple.
//
// The families form a closed set: [New] dispatches on [Family] through a
// table holding one generator per family.
package prototype
