package guidgen

// Parameters of the 32-bit MT19937 algorithm.
const (
	mtStateSize = 624
	mtShiftSize = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtInitMult  = 1812433253
)

// mt19937 is a 32-bit Mersenne Twister engine. The algorithm is fully
// standardized, so a given seed yields the same output stream on every
// platform and in every conforming implementation. Seeded GUIDs depend
// on that: math/rand gives no such stream-stability guarantee across
// releases, which is why the engine lives here.
//
// The zero value is not usable; call seed before next.
type mt19937 struct {
	state [mtStateSize]uint32
	index int
}

// seed initializes the state vector from a single 32-bit seed using the
// standard 1812433253 multiplier recurrence.
func (m *mt19937) seed(s uint32) {
	m.state[0] = s
	for i := 1; i < mtStateSize; i++ {
		prev := m.state[i-1]
		m.state[i] = mtInitMult*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtStateSize
}

// next returns the next 32-bit value of the stream.
func (m *mt19937) next() uint32 {
	if m.index >= mtStateSize {
		m.twist()
	}
	y := m.state[m.index]
	m.index++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// twist regenerates the full state vector. In-place with modular
// indexing; for i >= mtStateSize-mtShiftSize the recurrence picks up
// already-regenerated words, matching the reference implementation.
func (m *mt19937) twist() {
	for i := 0; i < mtStateSize; i++ {
		y := (m.state[i] & mtUpperMask) | (m.state[(i+1)%mtStateSize] & mtLowerMask)
		v := m.state[(i+mtShiftSize)%mtStateSize] ^ (y >> 1)
		if y&1 != 0 {
			v ^= mtMatrixA
		}
		m.state[i] = v
	}
	m.index = 0
}
