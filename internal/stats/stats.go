// Package stats keeps a rolling history of population counts.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultCapacity is the number of generations kept by NewHistory(0).
const DefaultCapacity = 256

// History is a fixed-capacity ring of population samples.
type History struct {
	samples []float64
	next    int
	full    bool
	last    uint64
}

// NewHistory returns a history holding up to capacity samples.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{samples: make([]float64, capacity)}
}

// Record appends the population of the given generation.
func (h *History) Record(generation uint64, population int) {
	h.samples[h.next] = float64(population)
	h.next++
	if h.next == len(h.samples) {
		h.next = 0
		h.full = true
	}
	h.last = generation
}

// Reset discards all samples.
func (h *History) Reset() {
	h.next = 0
	h.full = false
	h.last = 0
}

// Len reports how many samples are held.
func (h *History) Len() int {
	if h.full {
		return len(h.samples)
	}
	return h.next
}

// Values returns the samples oldest first.
func (h *History) Values() []float64 {
	if !h.full {
		return append([]float64(nil), h.samples[:h.next]...)
	}
	out := make([]float64, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

// Summary describes the population over the held window.
type Summary struct {
	Generation uint64
	Samples    int
	Last       float64
	Mean       float64
	StdDev     float64
	Min        float64
	Max        float64
}

// Summary computes statistics over the held samples. An empty history yields
// the zero Summary.
func (h *History) Summary() Summary {
	vals := h.Values()
	if len(vals) == 0 {
		return Summary{}
	}
	s := Summary{
		Generation: h.last,
		Samples:    len(vals),
		Last:       vals[len(vals)-1],
		Min:        floats.Min(vals),
		Max:        floats.Max(vals),
	}
	if len(vals) == 1 {
		s.Mean = vals[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	return s
}
