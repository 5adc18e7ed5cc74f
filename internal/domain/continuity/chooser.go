package continuity

import (
	"math/rand/v2"
)

// Chooser picks an index in [0, n). It is the only source of randomness in
// continuity building, so tests can script it.
type Chooser interface {
	Intn(n int) int
}

type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Chooser whose sequence is fixed by seed.
func NewSeeded(seed uint64) Chooser {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// Fixed always picks the same index, clamped to the pool size.
type Fixed int

func (f Fixed) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func pick(c Chooser, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	i := c.Intn(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}
