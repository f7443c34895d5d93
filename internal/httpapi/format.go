package httpapi

import "github.com/shopspring/decimal"

// formatYield renders a yield with two decimals, rounding half away from zero.
func formatYield(v float64) string {
	return "Predicted Yield: " + decimal.NewFromFloat(v).StringFixed(2) + " mt/ha"
}

// formatProduction renders a production estimate with one decimal.
func formatProduction(v float64) string {
	return "Estimated Production: " + decimal.NewFromFloat(v).StringFixed(1) + " metric tons"
}
