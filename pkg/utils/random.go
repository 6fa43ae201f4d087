package utils

import "math/rand"

// RandomNumber returns a uniform integer in [min, max].
func RandomNumber(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// Percent draws a uniform integer in [1, 100].
func Percent(rng *rand.Rand) int {
	return RandomNumber(rng, 1, 100)
}
