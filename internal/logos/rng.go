package logos

import (
	"crypto/rand"
	mrand "math/rand/v2"
)

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// XorShift32 is a small deterministic generator for seeded deals. Its
// 32-bit state reaches at most 2^32-1 distinct shuffles, so pools of 13 or
// more logos cannot produce every permutation; use NewRandomSource there.
type XorShift32 struct {
	state uint32
}

func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = 0x12345678
	}
	return &XorShift32{state: seed}
}

func (x *XorShift32) Next() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// IntN draws by rejection so that every value in [0, n) is equally likely.
func (x *XorShift32) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	bound := uint64(n)
	limit := (1 << 32) - (1<<32)%bound
	for {
		v := uint64(x.Next())
		if v < limit {
			return int(v % bound)
		}
	}
}

// ChaChaSource draws from a ChaCha8 stream. Its 256-bit seed covers every
// permutation of pools up to 57 logos.
type ChaChaSource struct {
	r *mrand.Rand
}

func NewChaChaSource(seed [32]byte) *ChaChaSource {
	return &ChaChaSource{r: mrand.New(mrand.NewChaCha8(seed))}
}

// NewRandomSource seeds a ChaChaSource from crypto/rand.
func NewRandomSource() *ChaChaSource {
	var seed [32]byte
	_, _ = rand.Read(seed[:])
	return NewChaChaSource(seed)
}

func (c *ChaChaSource) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return c.r.IntN(n)
}
