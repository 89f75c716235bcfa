package audio

import "math"

// Clamp bounds v to [lo, hi]. Callers may pass lo > hi to invert the
// mapping direction; NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Scale linearly maps v from [inLo, inHi] to [outLo, outHi]. The result
// always lies between outLo and outHi inclusive, whichever order they are
// given in, and is monotonic in v. A zero-width input span maps to outLo.
func Scale(v, inLo, inHi, outLo, outHi float64) float64 {
	span := inHi - inLo
	if span == 0 {
		return outLo
	}
	t := Clamp((v-inLo)/span, 0, 1)
	return outLo + t*(outHi-outLo)
}

// DBToGain converts decibels to a linear amplitude multiplier.
func DBToGain(db float64) float64 {
	return math.Pow(10, db/20)
}
