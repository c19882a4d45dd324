package guidgen

import (
	"math/bits"
	"unsafe"
)

// DefaultSeedOffset is the compiled-in accumulation offset used by the
// package-level generator. It acts as an application-wide salt for the
// seed expansion fold: two builds (or two Generators) with different
// offsets produce different GUIDs for the same seed text.
const DefaultSeedOffset uint32 = 0x271d8a39

// scalarSeed is the per-engine seed word.
type scalarSeed = uint32

// Engines need at least 32 bits of seed material; narrowing scalarSeed
// below that makes this constant underflow and the build fail.
const _ = unsafe.Sizeof(scalarSeed(0)) - 4

// expandSeed folds an arbitrary-length seed into a single engine seed.
// The accumulator starts at offset; each byte is shifted into the low
// bits, XOR-mixed with the previous accumulator so repeating byte
// patterns do not cancel cyclically, then spread across the word by a
// fixed left rotation. bits.RotateLeft32 normalizes rot of any sign or
// magnitude into [0,32).
func expandSeed(seed []byte, offset scalarSeed, rot int) scalarSeed {
	acc := offset
	for _, b := range seed {
		acc = bits.RotateLeft32(acc^((acc<<8)|scalarSeed(b)), rot)
	}
	return acc
}
