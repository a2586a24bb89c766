package scheduler

import (
	"math"

	"github.com/lenacroft/tempo/internal/domain"
)

// Capacity is a day's plannable minute budget after the interruption
// reserve is withheld.
type Capacity struct {
	TotalMin  int
	BufferMin int
	NetMin    int
	Enabled   bool
	// Flexible days are not capped at NetMin, but are never proactively
	// over-filled either.
	Flexible bool
}

// ComputeCapacity derives the capacity for a working window. The buffer is
// rounded up so at least the configured reserve is withheld: a 465-minute
// day at 25% reserves 117 minutes, leaving 348 net. Disabled and malformed
// windows yield a zero capacity that short-circuits every downstream
// computation.
func ComputeCapacity(w domain.DayWindow, bufferPct float64) Capacity {
	total := w.Minutes()
	if total == 0 {
		return Capacity{}
	}
	if bufferPct < 0 {
		bufferPct = 0
	}
	buffer := int(math.Ceil(float64(total) * bufferPct))
	if buffer > total {
		buffer = total
	}
	return Capacity{
		TotalMin:  total,
		BufferMin: buffer,
		NetMin:    total - buffer,
		Enabled:   true,
		Flexible:  w.Flexible,
	}
}
