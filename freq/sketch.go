// Package freq tracks approximate symbol frequencies over a stream of
// draws. The audit tooling feeds it every selected symbol and reads back
// the most frequent ones: a broken selector (modulo bias, unreachable
// symbols) shows up as a skewed top list.
package freq

import (
	"sync"

	"github.com/keilerkonzept/topk/sliding"
)

const (
	sketchSegments = 10
	sketchWidth    = 1024
	sketchDepth    = 3
)

// Sketch provides thread-safe access to a sliding top-k sketch and
// manages ticking.
type Sketch struct {
	mu        sync.Mutex
	sketch    *sliding.Sketch
	tickSize  uint64 // observations per tick
	sinceTick uint64
	total     uint64
}

// SymbolCount is one entry of the top list.
type SymbolCount struct {
	Symbol string
	Count  uint32
}

// New creates a sketch tracking the top most-frequent symbols.
// tickSize is how many observations advance the sliding window once.
func New(top int, tickSize uint64) *Sketch {
	if top <= 0 {
		top = 10
	}
	if tickSize == 0 {
		tickSize = 1000
	}

	instance := sliding.New(top, sketchSegments, sliding.WithWidth(sketchWidth), sliding.WithDepth(sketchDepth))
	return &Sketch{
		sketch:   instance,
		tickSize: tickSize,
	}
}

// Observe records one drawn symbol.
func (s *Sketch) Observe(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sketch.Incr(symbol)
	s.total++
	s.sinceTick++
	if s.sinceTick >= s.tickSize {
		s.sketch.Tick()
		s.sinceTick = 0
	}
}

// Top returns up to limit symbols, most frequent first.
func (s *Sketch) Top(limit int) []SymbolCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sketch.SortedSlice()
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]SymbolCount, 0, len(items))
	for _, item := range items {
		out = append(out, SymbolCount{Symbol: item.Item, Count: item.Count})
	}
	return out
}

// Total returns the number of observations so far.
func (s *Sketch) Total() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// SizeBytes reports the sketch's memory footprint.
func (s *Sketch) SizeBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sketch.SizeBytes()
}
