package validation

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

const (
	minGradeAverage = 0
	maxGradeAverage = 100

	maxCredentialBytes = 72
)

// Identifier accepts a positive integral number or integer string.
func Identifier(v Value) (int64, bool) {
	n, ok := integral(v)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// HoursCount accepts a positive integral number or integer string.
func HoursCount(v Value) (int64, bool) {
	return Identifier(v)
}

// PersonalName trims the input and allows letters, spaces, hyphens and apostrophes.
func PersonalName(v Value) (string, bool) {
	s, ok := v.Text()
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return "", false
	}
	return s, true
}

// RegistrationCode accepts "A" followed by at least one ASCII digit.
func RegistrationCode(v Value) (string, bool) {
	s, ok := v.Text()
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	digits, found := strings.CutPrefix(s, "A")
	if !found || digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	return s, true
}

// GradeAverage accepts a finite number or numeric string within [0, 100].
func GradeAverage(v Value) (float64, bool) {
	var raw string
	switch v.Kind() {
	case KindNumber:
		lit, _ := v.Literal()
		raw = lit.String()
	case KindString:
		s, _ := v.Text()
		raw = strings.TrimSpace(s)
	default:
		return 0, false
	}

	if strings.ContainsAny(raw, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < minGradeAverage || f > maxGradeAverage {
		return 0, false
	}
	return f, true
}

// Credential accepts a non-blank string of at most maxCredentialBytes bytes and
// keeps it unmodified. Longer inputs cannot be hashed with bcrypt.
func Credential(v Value) (string, bool) {
	s, ok := v.Text()
	if !ok || strings.TrimSpace(s) == "" || len(s) > maxCredentialBytes {
		return "", false
	}
	return s, true
}

// integral resolves numbers such as 5, 5.0 or 1e3 and plain integer strings.
func integral(v Value) (int64, bool) {
	switch v.Kind() {
	case KindNumber:
		lit, _ := v.Literal()
		if n, err := lit.Int64(); err == nil {
			return n, true
		}
		f, err := lit.Float64()
		if err != nil || math.Abs(f) >= math.MaxInt64 {
			return 0, false
		}
		r, ok := new(big.Rat).SetString(lit.String())
		if !ok || !r.IsInt() || !r.Num().IsInt64() {
			return 0, false
		}
		return r.Num().Int64(), true
	case KindString:
		s, _ := v.Text()
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
