package generator

import "math"

// Strength labels how resistant a password is to brute force.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

const (
	mediumEntropyBits = 40
	strongEntropyBits = 60
)

// EntropyBits estimates brute-force resistance in bits for a password of the
// given length drawn uniformly from a pool of poolSize characters.
func EntropyBits(length, poolSize int) float64 {
	if length < 1 || poolSize < 2 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// Evaluate scores a password against the pool it was drawn from. The score
// depends only on length and pool size. Boundaries are inclusive: exactly 40
// bits rates medium, exactly 60 bits rates strong.
func Evaluate(password string, poolSize int) Strength {
	entropy := EntropyBits(len(password), poolSize)
	switch {
	case entropy >= strongEntropyBits:
		return StrengthStrong
	case entropy >= mediumEntropyBits:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}
