// Package fixedtrig provides integer sine and cosine lookups.
//
// Angles are expressed in a native full-turn unit (FullTurn == one
// revolution) and results are ratios scaled by MaxRatio, so every
// geometric offset in the renderer is computed as
//
//	offset = value * radius / MaxRatio
//
// without touching floating point at draw time.
package fixedtrig

import "math"

const (
	// FullTurn is one revolution in native angle units.
	FullTurn = 0x10000
	// MaxRatio is the full-scale value of Sin and Cos.
	MaxRatio = 0xffff

	quarter = FullTurn / 4
)

// quarterLUT holds sin over [0, quarter] inclusive.
var quarterLUT [quarter + 1]int32

func init() {
	for i := 0; i <= quarter; i++ {
		rad := 2.0 * math.Pi * float64(i) / FullTurn
		quarterLUT[i] = int32(math.Round(math.Sin(rad) * MaxRatio))
	}
}

// Sin returns the sine of angle scaled to MaxRatio.
// Any int32 angle is accepted; it is reduced modulo FullTurn.
func Sin(angle int32) int32 {
	a := int(angle) & (FullTurn - 1)
	switch {
	case a <= quarter:
		return quarterLUT[a]
	case a <= 2*quarter:
		return quarterLUT[2*quarter-a]
	case a <= 3*quarter:
		return -quarterLUT[a-2*quarter]
	default:
		return -quarterLUT[FullTurn-a]
	}
}

// Cos returns the cosine of angle scaled to MaxRatio.
func Cos(angle int32) int32 {
	return Sin(angle + quarter)
}

// FromDegrees converts whole degrees to native angle units.
func FromDegrees(deg int) int32 {
	return int32(int64(FullTurn) * int64(deg) / 360)
}

// Offset scales a trig ratio by radius, truncating toward zero.
func Offset(ratio int32, radius int) int {
	return int(int64(ratio) * int64(radius) / MaxRatio)
}
