package prototype

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Family selects the analog prototype design.
type Family int

const (
	FamilyButterworth Family = iota
	FamilyChebyshev1
	FamilyChebyshev2
	FamilyElliptic
	FamilyBessel

	numFamilies
)

var familyNames = [numFamilies]string{
	FamilyButterworth: "butterworth",
	FamilyChebyshev1:  "chebyshev1",
	FamilyChebyshev2:  "chebyshev2",
	FamilyElliptic:    "elliptic",
	FamilyBessel:      "bessel",
}

// common short names
var familyAliases = map[string]Family{
	"butter":  FamilyButterworth,
	"cheby1":  FamilyChebyshev1,
	"cheby2":  FamilyChebyshev2,
	"ellip":   FamilyElliptic,
	"cauer":   FamilyElliptic,
	"thomson": FamilyBessel,
}

// Families returns all design families in declaration order.
func Families() []Family {
	out := make([]Family, numFamilies)
	for i := range out {
		out[i] = Family(i)
	}
	return out
}

func (f Family) String() string {
	if f < 0 || f >= numFamilies {
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
	return familyNames[f]
}

// Valid reports whether f is one of the declared families.
func (f Family) Valid() bool {
	return f >= 0 && f < numFamilies
}

// UsesPassbandRipple reports whether the family reads Params.PassbandRippleDB.
func (f Family) UsesPassbandRipple() bool {
	return f == FamilyChebyshev1 || f == FamilyElliptic
}

// UsesStopbandAtten reports whether the family reads Params.StopbandAttenDB.
func (f Family) UsesStopbandAtten() bool {
	return f == FamilyChebyshev2 || f == FamilyElliptic
}

// ParseFamily accepts a family name or one of its short aliases,
// case-insensitively.
func ParseFamily(s string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range familyNames {
		if key == name {
			return Family(i), nil
		}
	}
	if f, ok := familyAliases[key]; ok {
		return f, nil
	}
	return 0, errors.Wrapf(ErrInvalidParams, "unknown design family %q", s)
}

// BesselNorm selects how a Bessel prototype is frequency normalized.
type BesselNorm int

const (
	// BesselDelay normalizes the group delay at DC to 1 second.
	BesselDelay BesselNorm = iota
	// BesselPhase scales the poles so the phase response reaches its
	// midpoint at 1 rad/s (the high frequency asymptote matches a
	// Butterworth of the same order).
	BesselPhase
	// BesselMagnitude places the -3 dB point at 1 rad/s.
	BesselMagnitude

	numBesselNorms
)

var besselNormNames = [numBesselNorms]string{
	BesselDelay:     "delay",
	BesselPhase:     "phase",
	BesselMagnitude: "magnitude",
}

func (n BesselNorm) String() string {
	if n < 0 || n >= numBesselNorms {
		return "BesselNorm(" + strconv.Itoa(int(n)) + ")"
	}
	return besselNormNames[n]
}

// ParseBesselNorm parses "delay", "phase" or "magnitude" ("mag").
func ParseBesselNorm(s string) (BesselNorm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "mag" {
		return BesselMagnitude, nil
	}
	for i, name := range besselNormNames {
		if key == name {
			return BesselNorm(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidParams, "unknown bessel normalization %q", s)
}
