package iir

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BandType is the shape of the pass band.
type BandType int

const (
	Lowpass BandType = iota
	Highpass
	Bandpass
	Bandstop

	numBandTypes
)

var bandNames = [numBandTypes]string{
	Lowpass:  "lowpass",
	Highpass: "highpass",
	Bandpass: "bandpass",
	Bandstop: "bandstop",
}

var bandAliases = map[string]BandType{
	"lp":    Lowpass,
	"hp":    Highpass,
	"bp":    Bandpass,
	"bs":    Bandstop,
	"notch": Bandstop,
}

// BandTypes returns all band types in declaration order.
func BandTypes() []BandType {
	out := make([]BandType, numBandTypes)
	for i := range out {
		out[i] = BandType(i)
	}
	return out
}

func (b BandType) String() string {
	if b < 0 || b >= numBandTypes {
		return "BandType(" + strconv.Itoa(int(b)) + ")"
	}
	return bandNames[b]
}

// Valid reports whether b is one of the declared band types.
func (b BandType) Valid() bool {
	return b >= 0 && b < numBandTypes
}

// TwoEdges reports whether the band is defined by both cutoffs.
func (b BandType) TwoEdges() bool {
	return b == Bandpass || b == Bandstop
}

// ParseBandType accepts "lowpass", "highpass", "bandpass", "bandstop" and
// the short forms lp, hp, bp, bs and notch.
func ParseBandType(s string) (BandType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range bandNames {
		if key == name {
			return BandType(i), nil
		}
	}
	if b, ok := bandAliases[key]; ok {
		return b, nil
	}
	return 0, errors.Wrapf(ErrInvalidSpec, "unknown band type %q", s)
}
