package domain

import "math"

// Prices are integer currency units throughout. Whenever a net amount is
// derived from a gross one, it is round(gross / (1 + vat_rate)); the standard
// VAT rate back-calculation uses 1.27.
const standardVatDivisor = 1.27

// NetFromGross back-calculates a net amount from a gross one at the standard
// VAT rate. Works for negative (discount) amounts too.
func NetFromGross(gross int) int {
	return int(math.Round(float64(gross) / standardVatDivisor))
}

// ProportionalPrice scales a price by amount/base, rounded to the nearest
// currency unit. base must be checked non-zero by the caller.
func ProportionalPrice(price int, amount, base uint32) int {
	return int(math.Round(float64(price) * float64(amount) / float64(base)))
}
