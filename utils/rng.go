package utils

// SeededRNG is a Park-Miller multiplicative linear congruential generator:
// state = (state * 16807) mod 2147483647. It is pure and reproducible:
// the same seed always yields the same output sequence. The to-do list
// generator depends on that, so do not swap this for math/rand.
type SeededRNG struct {
	state int64
}

// NewSeededRNG seeds the generator. A zero seed falls back to 1; negative
// seeds are folded into the generator's modulus so every integer produces
// a valid, deterministic stream.
func NewSeededRNG(seed int64) *SeededRNG {
	s := seed % 2147483647
	if s < 0 {
		s += 2147483647
	}
	if s == 0 {
		s = 1
	}
	return &SeededRNG{state: s}
}

// Float64 advances the generator and returns a value in [0, 1).
func (r *SeededRNG) Float64() float64 {
	r.state = (r.state * 16807) % 2147483647
	return float64(r.state-1) / 2147483646
}

// Intn returns a value in [0, n) drawn from the next generator output.
func (r *SeededRNG) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// Shuffle permutes n elements with a Fisher-Yates pass that consumes the
// generator sequence index-by-index, one draw per position from the back.
// Unlike a comparator-based shuffle, the permutation depends only on the
// seed, never on sort internals.
func (r *SeededRNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
