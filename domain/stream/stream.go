// Package stream provides the deterministic pseudorandom bit source that
// underlies every primitive generator.
//
// A State is an immutable value: drawing from it returns the drawn value
// together with the advanced state, and the original state is untouched.
// Identical seeds produce identical sequences on any platform, any run.
package stream

// splitmix64 constants (Steele, Lea & Flood; Vigna's reference mixer).
const (
	goldenGamma  = 0x9E3779B97F4B7C15
	mixMul1      = 0xBF58476D1CE4E5B9
	mixMul2      = 0x94D049BB133111EB
	gammaMixMul1 = 0xFF51AFD7ED558CCD
	gammaMixMul2 = 0xC4CEB9FE1A85EC53
)

// State is one position in a deterministic pseudorandom sequence. The zero
// value is a valid state (the sequence seeded with 0). States are plain
// values: copying one and advancing the copy never disturbs the original,
// so a State may be shared freely across goroutines.
type State struct {
	s     uint64
	gamma uint64
}

// Seed derives a fresh State from a seed. Any int64 is accepted; the mixer
// normalizes it, so there are no invalid seeds.
func Seed(seed int64) State {
	return State{s: mix64(uint64(seed)), gamma: goldenGamma}
}

// Next returns a raw 64-bit draw and the advanced state.
func (st State) Next() (uint64, State) {
	st.s += st.gamma
	return mix64(st.s), st
}

// Split derives two independent states from one. Both are deterministic
// functions of the input; their output sequences do not observably correlate,
// so two consumers can draw from the halves without interfering.
func (st State) Split() (State, State) {
	seed, st2 := st.Next()
	gammaBits, st3 := st2.Next()
	branch := State{s: mix64(seed), gamma: mixGamma(gammaBits)}
	return st3, branch
}

// Float64 draws a uniform float in [0, 1) and returns the advanced state.
func (st State) Float64() (float64, State) {
	bits, next := st.Next()
	// 53 high bits give the standard uniform double in [0, 1).
	return float64(bits>>11) / (1 << 53), next
}

// Intn draws a uniform integer in [0, n) and returns the advanced state.
// n must be positive; the caller validates, matching how primitive
// generators reject bad bounds before any state is consumed.
func (st State) Intn(n int) (int, State) {
	bound := uint64(n)
	// Rejection sampling removes modulo bias. The rejection zone is
	// 2^64 mod n values wide, so a retry is vanishingly rare for the
	// small bounds simulations draw.
	threshold := -bound % bound
	for {
		bits, next := st.Next()
		st = next
		if bits >= threshold {
			return int(bits % bound), st
		}
	}
}

// mix64 is the splitmix64 output finalizer: a bijection on uint64 that
// decorrelates consecutive counter values.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= mixMul1
	x ^= x >> 27
	x *= mixMul2
	x ^= x >> 31
	return x
}

// mixGamma produces an odd, well-mixed gamma for a split-off branch. Gammas
// must be odd so the underlying counter visits every state.
func mixGamma(x uint64) uint64 {
	x ^= x >> 33
	x *= gammaMixMul1
	x ^= x >> 33
	x *= gammaMixMul2
	x ^= x >> 33
	return x | 1
}
