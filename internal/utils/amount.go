// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrAmountTooLarge = errors.New("amount overflows 64-bit subunits")
	ErrTooManyDecimal = errors.New("amount has more fractional digits than the token supports")
)

// ToSubunits converts a human amount such as "1.25" into integer subunits of a
// token with the given number of decimals. Negative values, exponents and
// more fractional digits than decimals are rejected; nothing is rounded.
func ToSubunits(amount string, decimals uint8) (uint64, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if hasDot && frac == "" && whole == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (hasDot && frac != "" && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	frac = strings.TrimRight(frac, "0")
	if len(frac) > int(decimals) {
		return 0, fmt.Errorf("%w: %q with %d decimals", ErrTooManyDecimal, amount, decimals)
	}

	scale, ok := pow10(decimals)
	if !ok {
		return 0, fmt.Errorf("%w: decimals %d", ErrAmountTooLarge, decimals)
	}

	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrAmountTooLarge, amount)
	}
	if w > math.MaxUint64/scale {
		return 0, fmt.Errorf("%w: %q", ErrAmountTooLarge, amount)
	}
	result := w * scale

	if frac != "" {
		frac += strings.Repeat("0", int(decimals)-len(frac))
		f, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrAmountTooLarge, amount)
		}
		if result > math.MaxUint64-f {
			return 0, fmt.Errorf("%w: %q", ErrAmountTooLarge, amount)
		}
		result += f
	}

	return result, nil
}

// FormatSubunits renders subunits as a decimal string without trailing
// fractional zeros, e.g. 125000000 with 8 decimals is "1.25".
func FormatSubunits(value uint64, decimals uint8) string {
	digits := strconv.FormatUint(value, 10)
	if decimals == 0 {
		return digits
	}

	d := int(decimals)
	if len(digits) <= d {
		digits = strings.Repeat("0", d-len(digits)+1) + digits
	}

	whole, frac := digits[:len(digits)-d], strings.TrimRight(digits[len(digits)-d:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// AddChecked returns a+b or false when the sum overflows uint64.
func AddChecked(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

func pow10(n uint8) (uint64, bool) {
	result := uint64(1)
	for range n {
		if result > math.MaxUint64/10 {
			return 0, false
		}
		result *= 10
	}
	return result, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
