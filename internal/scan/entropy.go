package scan

import "math"

// Entropy returns the Shannon entropy of s in bits per character. An empty
// string yields 0 by convention.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	H := 0.0
	total := float64(n)
	for _, c := range count {
		p := float64(c) / total
		H += -p * math.Log2(p)
	}
	return H
}

// Round2 rounds to two decimal places, the precision findings carry.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
