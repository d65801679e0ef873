package common

// Mulberry32 is a small seeded pseudo-random generator. The same seed always
// yields the same sequence, which keeps decoration layouts reproducible in
// tests.
type Mulberry32 struct {
	state uint32
	seed  uint32
}

// NewMulberry32 creates a generator for seed.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed, seed: seed}
}

// Seed returns the seed the generator was created with.
func (r *Mulberry32) Seed() uint32 {
	return r.seed
}

// Random returns the next float in [0, 1).
func (r *Mulberry32) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Intn returns an int in [0, n). n must be positive.
func (r *Mulberry32) Intn(n int) int {
	i := int(r.Random() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Between returns a float in [lo, hi).
func (r *Mulberry32) Between(lo, hi float64) float64 {
	return lo + r.Random()*(hi-lo)
}

// SeedFromMillis folds a millisecond timestamp (Date.now()) into a seed.
func SeedFromMillis(ms float64) uint32 {
	v := uint64(ms)
	seed := uint32(v) ^ uint32(v>>32)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
