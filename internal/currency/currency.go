package currency

import (
	"errors"
	"fmt"
	"strings"
)

// Currency is an ISO 4217 alphabetic currency code.
type Currency string

// Lookup errors
var (
	ErrUnknownCode    = errors.New("unknown currency code")
	ErrUnknownNumeric = errors.New("unknown numeric currency code")
)

// numericCodes maps supported ISO 4217 alphabetic codes to their numeric codes.
var numericCodes = map[Currency]int{
	"AUD": 36, "BRL": 986, "CAD": 124, "CHF": 756,
	"CNY": 156, "CZK": 203, "DKK": 208, "EUR": 978,
	"GBP": 826, "HKD": 344, "HUF": 348, "INR": 356,
	"JPY": 392, "KRW": 410, "MXN": 484, "NOK": 578,
	"NZD": 554, "PLN": 985, "SEK": 752, "SGD": 702,
	"TRY": 949, "USD": 840, "ZAR": 710,
}

// alphaByNumeric is the reverse lookup, built once at init.
var alphaByNumeric = func() map[int]Currency {
	m := make(map[int]Currency, len(numericCodes))
	for code, numeric := range numericCodes {
		m[numeric] = code
	}
	return m
}()

// FromCode resolves an alphabetic currency code.
func FromCode(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := numericCodes[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}
	return c, nil
}

// FromNumeric resolves a numeric currency code.
func FromNumeric(numeric int) (Currency, error) {
	c, ok := alphaByNumeric[numeric]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownNumeric, numeric)
	}
	return c, nil
}

// Numeric returns the ISO 4217 numeric code, or 0 if the currency is unknown.
func (c Currency) Numeric() int {
	return numericCodes[c]
}

// IsValid reports whether the currency is a supported ISO 4217 code.
func (c Currency) IsValid() bool {
	_, ok := numericCodes[c]
	return ok
}

func (c Currency) String() string {
	return string(c)
}

// Contains reports whether set includes c.
func Contains(set []Currency, c Currency) bool {
	for _, member := range set {
		if member == c {
			return true
		}
	}
	return false
}

// Join renders a currency set as a comma separated list.
func Join(set []Currency) string {
	codes := make([]string, len(set))
	for i, c := range set {
		codes[i] = string(c)
	}
	return strings.Join(codes, ",")
}
