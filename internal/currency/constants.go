package currency

const (
	// MinorUnitsPerMajor is the divisor for currencies with two decimal places
	MinorUnitsPerMajor = 100

	// TwoDecimalScale is the display precision of fractional currencies
	TwoDecimalScale = 2
)
