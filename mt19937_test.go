package guidgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference stream for seed 5489, the standard MT19937 check values.
// Conformance here is what guarantees seeded GUIDs reproduce across
// implementations and platforms.
func TestMT19937_ReferenceStream(t *testing.T) {
	var m mt19937
	m.seed(5489)

	want := []uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204}
	for i, w := range want {
		assert.Equal(t, w, m.next(), "output %d", i)
	}
}

// The 10000th draw for seed 5489 is the published conformance value;
// it exercises multiple state regenerations.
func TestMT19937_TenThousandthDraw(t *testing.T) {
	var m mt19937
	m.seed(5489)

	var v uint32
	for i := 0; i < 10000; i++ {
		v = m.next()
	}
	assert.Equal(t, uint32(4123659995), v)
}

func TestMT19937_SeedSensitivity(t *testing.T) {
	var a, b mt19937
	a.seed(1)
	b.seed(2)

	same := true
	for i := 0; i < 16; i++ {
		if a.next() != b.next() {
			same = false
			break
		}
	}
	assert.False(t, same, "streams for different seeds must diverge")
}

func TestMT19937_Reseed(t *testing.T) {
	var m mt19937
	m.seed(5489)
	first := m.next()

	for i := 0; i < 1000; i++ {
		m.next()
	}
	m.seed(5489)
	assert.Equal(t, first, m.next(), "reseeding must restart the stream")
}
