package retention

// SelfDischarge converts the decay rate at tempC into the reported rate in
// percent per month and the equivalent standing current in milliamps for the
// given nominal capacity.
func SelfDischarge(tempC, baseRate, referenceTempC, nominalCapacityAh float64) (ratePercentPerMonth, currentMilliamps float64) {
	k := DecayRate(tempC, baseRate, referenceTempC)
	return k * 100, k * nominalCapacityAh * 1000
}
