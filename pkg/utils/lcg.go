package utils

import "time"

// LCG is a small linear-congruential sequence used to pick resource rows with
// best-effort variety between generations. A zero seed derives one from the
// clock; tests pass a fixed seed for reproducible selections.
type LCG struct {
	state uint64
}

func NewLCG(seed int64) *LCG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LCG{state: uint64(seed)}
}

func (l *LCG) next() uint64 {
	l.state = l.state*6364136223846793005 + 1442695040888963407
	return l.state
}

func (l *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((l.next() >> 33) % uint64(n))
}

func (l *LCG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := l.Intn(i + 1)
		swap(i, j)
	}
}
