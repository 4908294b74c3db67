// Package aging implements the Arrhenius temperature correction of the
// internal resistance table and its interpolation at arbitrary aging years.
package aging

import (
	"math"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

// KelvinOffset converts Celsius to Kelvin.
const KelvinOffset = 273.15

// CorrectionFactor returns exp((Ea/R) * (1/T_target - 1/T_base)) with the
// temperatures in Kelvin. For a target colder than the base the factor is
// greater than one: resistance rises at cold temperature. The model is
// unit-agnostic; Ea and the gas constant only need to match each other.
func CorrectionFactor(baseTempC, targetTempC, activationEnergy, gasConstant float64) (float64, error) {
	if gasConstant <= 0 {
		return 0, model.Invalidf("gas constant must be positive, got %g", gasConstant)
	}
	baseK := baseTempC + KelvinOffset
	targetK := targetTempC + KelvinOffset
	if baseK <= 0 || targetK <= 0 {
		return 0, model.Invalidf("temperature below absolute zero")
	}
	return math.Exp((activationEnergy / gasConstant) * (1/targetK - 1/baseK)), nil
}

// CorrectSeries scales the base resistance series elementwise to targetTempC.
// The returned series has the same length and units as the input.
func CorrectSeries(base []float64, baseTempC, targetTempC, activationEnergy, gasConstant float64) ([]float64, error) {
	f, err := CorrectionFactor(baseTempC, targetTempC, activationEnergy, gasConstant)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(base))
	for i, r := range base {
		out[i] = r * f
	}
	return out, nil
}
