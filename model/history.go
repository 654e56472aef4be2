package model

const defaultHistoryDepth = 5

// History keeps the hashes of recent generations for cycle detection.
type History struct {
	depth  int
	hashes []string
}

// NewHistory returns a History holding at most depth hashes.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = defaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record appends a hash, dropping the oldest once depth is exceeded
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded hash
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether hash repeats one of the last three recorded
// generations: a still life (period 1) or an oscillator of period 2 or 3.
func (h *History) IsStagnant(hash string) bool {
	n := len(h.hashes)
	for back := 1; back <= 3 && back <= n; back++ {
		if h.hashes[n-back] == hash {
			return true
		}
	}
	return false
}
