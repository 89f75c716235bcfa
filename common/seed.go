package common

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Every randomized synthesis decision (pluck pitch, texture filter jitter,
// trigger probability rolls) draws from one of these so a session is fully
// reproducible from its seed.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random generates the next random number using the Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64((t^(t>>14))>>0) / 4294967296.0
}

// RandomInt generates a random integer in the specified range [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// RandomFloat generates a random float in the specified range [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Jitter returns v scaled by a random factor in [1-amount, 1+amount].
func (r *SeededRNG) Jitter(v, amount float64) float64 {
	return v * (1 + (r.Random()*2-1)*amount)
}

// Chance returns true with probability p.
func (r *SeededRNG) Chance(p float64) bool {
	return r.Random() < p
}

// SessionSeed derives a deterministic seed for the nth engine session
// started from a base seed.
func SessionSeed(baseSeed uint32, session int) uint32 {
	seed := baseSeed ^ (uint32(session) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
