// Package retention implements the capacity retention and self-discharge
// models: an exponential decay law whose rate doubles for every 10 degC above
// the reference temperature.
package retention

import "math"

// DecayRate returns the monthly fractional capacity loss k(T) at tempC given
// the rate at the reference temperature.
func DecayRate(tempC, baseRate, referenceTempC float64) float64 {
	return baseRate * math.Exp2((tempC-referenceTempC)/10)
}

// Curve evaluates C(t) = initial * (1-k)^t over the months axis. The second
// return value is true when k >= 1, i.e. the temperature is outside the decay
// law's validity region; values are still computed as the law specifies, the
// caller decides display policy.
func Curve(initialPct, tempC float64, months []float64, baseRate, referenceTempC float64) ([]float64, bool) {
	k := DecayRate(tempC, baseRate, referenceTempC)
	out := make([]float64, len(months))
	for i, t := range months {
		out[i] = initialPct * math.Pow(1-k, t)
	}
	return out, k >= 1
}

// Final returns the last point of a curve, the figure reported as remaining
// capacity at the end of storage. An empty curve yields NaN.
func Final(curve []float64) float64 {
	if len(curve) == 0 {
		return math.NaN()
	}
	return curve[len(curve)-1]
}
