package service_test

import (
	"sync"
	"testing"

	"github.com/shenikar/crisis_relief_coordinator/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_SameMillisecondStaysUnique(t *testing.T) {
	g := service.NewIDGenerator(fixedClock(1700000000000), 0)

	assert.Equal(t, int64(1700000000000), g.Next())
	assert.Equal(t, int64(1700000000001), g.Next())
	assert.Equal(t, int64(1700000000002), g.Next())
}

func TestIDGenerator_NeverBelowFloor(t *testing.T) {
	// Часы отстают от уже сохраненных id
	g := service.NewIDGenerator(fixedClock(1000), 1700000000500)

	assert.Equal(t, int64(1700000000501), g.Next())
}

func TestIDGenerator_ConcurrentCallersGetDistinctIDs(t *testing.T) {
	g := service.NewIDGenerator(fixedClock(1700000000000), 0)
	const workers, perWorker = 8, 100

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- g.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
