package logos

import "sync"

// Shuffle returns a uniformly random permutation of vals using
// Fisher-Yates. The input slice is left untouched.
func Shuffle[T any](vals []T, rng Source) []T {
	out := make([]T, len(vals))
	copy(out, vals)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SelectSix returns up to SelectionSize distinct positions of pool.
// Pools smaller than that yield every entry in random order.
func SelectSix(pool Pool, rng Source) []string {
	return selectPrefix(pool.items, rng)
}

// selectPrefix shuffles vals and keeps the first SelectionSize entries.
func selectPrefix[T any](vals []T, rng Source) []T {
	shuffled := Shuffle(vals, rng)
	if len(shuffled) > SelectionSize {
		shuffled = shuffled[:SelectionSize]
	}
	return shuffled
}

// Selection is one deal: pool indices plus the references they resolve to.
type Selection struct {
	Indices []int
	Logos   []string
}

// Selector deals selections from a fixed pool. It is safe for concurrent use.
type Selector struct {
	mu   sync.Mutex
	pool Pool
	rng  Source
}

func NewSelector(pool Pool, rng Source) *Selector {
	return &Selector{pool: pool, rng: rng}
}

func (s *Selector) Pool() Pool {
	return s.pool
}

// Deal draws a fresh selection. Indices refer to pool positions so that
// duplicate references in the pool still count as separate entries.
func (s *Selector) Deal() Selection {
	positions := make([]int, s.pool.Len())
	for i := range positions {
		positions[i] = i
	}
	s.mu.Lock()
	idx := selectPrefix(positions, s.rng)
	s.mu.Unlock()
	return s.Resolve(idx)
}

// Resolve maps pool indices to references. Callers validate indices first.
func (s *Selector) Resolve(indices []int) Selection {
	sel := Selection{
		Indices: append([]int(nil), indices...),
		Logos:   make([]string, len(indices)),
	}
	for i, idx := range indices {
		sel.Logos[i] = s.pool.At(idx)
	}
	return sel
}

// Valid reports whether indices could have come from Deal.
func (s *Selector) Valid(indices []int) bool {
	want := SelectionSize
	if s.pool.Len() < want {
		want = s.pool.Len()
	}
	if len(indices) != want {
		return false
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= s.pool.Len() || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
