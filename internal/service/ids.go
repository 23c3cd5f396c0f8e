package service

import (
	"sync"
	"time"
)

// IDGenerator выдает строго возрастающие id на основе времени в миллисекундах.
// Два инцидента в одну миллисекунду получают last+1, поэтому id не повторяются.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDGenerator создает генератор; floor - наибольший уже выданный id
func NewIDGenerator(now func() time.Time, floor int64) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now, last: floor}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
