package service

import (
	"strings"
	"unicode"
)

// Normalizer maps a raw scanned code to its canonical form. Normalize must
// be idempotent. ok is false if nothing usable remains.
type Normalizer interface {
	Normalize(code string) (normalized string, ok bool)
}

// NormalizerChain applies normalizers in order and stops at the first one
// that rejects the code.
type NormalizerChain []Normalizer

// Normalize implements [Normalizer].
func (c NormalizerChain) Normalize(code string) (string, bool) {
	for _, n := range c {
		var ok bool
		if code, ok = n.Normalize(code); !ok {
			return "", false
		}
	}
	return code, true
}

// DefaultNormalizer cleans up the code and then canonicalizes GTIN
// symbologies.
func DefaultNormalizer() Normalizer {
	return NormalizerChain{AlphanumericNormalizer{}, GTINNormalizer{}}
}

// AlphanumericNormalizer trims whitespace, strips leading and trailing
// characters that are neither letters nor digits and upper-cases the rest.
type AlphanumericNormalizer struct{}

// Normalize implements [Normalizer].
func (AlphanumericNormalizer) Normalize(code string) (string, bool) {
	code = strings.TrimFunc(code, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if code == "" {
		return "", false
	}
	return strings.ToUpper(code), true
}

// GTINNormalizer canonicalizes all-digit GTIN codes:
//   - UPC-A (12 digits) becomes EAN-13 with a leading zero
//   - GTIN-14 with a zero indicator digit becomes EAN-13
//   - EAN-8 and EAN-13 are kept
//
// Other codes pass through unchanged.
type GTINNormalizer struct{}

// Normalize implements [Normalizer].
func (GTINNormalizer) Normalize(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	if !allDigits(code) {
		return code, true
	}

	switch len(code) {
	case 12:
		return "0" + code, true
	case 14:
		if code[0] == '0' {
			return code[1:], true
		}
	}
	return code, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
