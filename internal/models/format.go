package models

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatNumber prints v with the shortest representation that round-trips,
// so 18.0 prints as "18" and 15.2 as "15.2".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ToFixed prints v with exactly digits decimals, rounding the exact binary
// value half up the way browsers do: 0.25 gives "0.3" and 0.125 gives
// "0.13", while 1.005, stored just below, gives "1.00".
func ToFixed(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e21 {
		return FormatNumber(v)
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	s := new(big.Int).Quo(r.Num(), r.Denom()).String()

	if digits <= 0 {
		return sign + s
	}
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	return sign + s[:len(s)-digits] + "." + s[len(s)-digits:]
}
