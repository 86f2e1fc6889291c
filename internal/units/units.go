// Package units converts between human decimal strings ("0.1") and integer
// base units (100000000000000000 for 18 decimals).
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ErrInvalidAmount is returned when an amount is not a non-negative decimal
// that fits the token's precision and a uint256.
var ErrInvalidAmount = errors.New("invalid amount")

// MaxDecimals is the largest precision whose unit still fits a uint256.
const MaxDecimals = 77

// Parse converts amount to base units with the given number of decimals.
// Fractional digits beyond decimals are accepted only when they are zeros.
func Parse(amount string, decimals uint8) (*big.Int, error) {
	if decimals > MaxDecimals {
		return nil, fmt.Errorf("%w: %d decimals is above %d", ErrInvalidAmount, decimals, MaxDecimals)
	}

	whole, frac, _ := strings.Cut(strings.TrimSpace(amount), ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, amount)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q is not a non-negative decimal number", ErrInvalidAmount, amount)
	}

	if len(frac) > int(decimals) {
		if strings.Trim(frac[decimals:], "0") != "" {
			return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidAmount, amount, decimals)
		}
		frac = frac[:decimals]
	}
	frac += strings.Repeat("0", int(decimals)-len(frac))

	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		return new(big.Int), nil
	}

	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, amount)
	}

	if _, overflow := uint256.FromBig(value); overflow {
		return nil, fmt.Errorf("%w: %q does not fit in 256 bits", ErrInvalidAmount, amount)
	}

	return value, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Format renders value with the given number of decimals, trimming trailing
// zeros but always keeping one fractional digit ("1.0", "0.25").
func Format(value *big.Int, decimals uint8) string {
	if value == nil {
		value = new(big.Int)
	}

	sign := ""
	abs := new(big.Int).Set(value)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}

	digits := abs.String()
	if len(digits) <= int(decimals) {
		digits = strings.Repeat("0", int(decimals)-len(digits)+1) + digits
	}

	cut := len(digits) - int(decimals)
	whole, frac := digits[:cut], strings.TrimRight(digits[cut:], "0")
	if frac == "" {
		frac = "0"
	}

	return sign + whole + "." + frac
}
