package transaction

import "strings"

// supportedCurrencies is the set of currency codes the application stores.
// Statements in anything else are rejected rather than coerced.
var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"GBP": {},
	"CAD": {},
	"AUD": {},
	"CHF": {},
	"JPY": {},
	"BRL": {},
	"INR": {},
	"SGD": {},
}

// NormalizeCurrency upper-cases and validates a currency code against the
// supported set.
func NormalizeCurrency(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := supportedCurrencies[c]; !ok {
		return "", &ValidationError{Field: "currency", Reason: "unsupported currency code " + code}
	}

	return c, nil
}
