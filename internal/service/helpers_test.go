package service_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/repository"
	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(repository.NewMemoryRepository(), newTestLogger())
	s.Initialize(context.Background())
	return s
}

// fixedRand всегда возвращает одни и те же значения: Intn(n) = min(i, n-1)
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

type recordingTrend struct {
	mu     sync.Mutex
	values []float64
}

func (r *recordingTrend) Push(v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

type recordingMetrics struct {
	mu        sync.Mutex
	published map[string]int
	outcomes  map[string]string
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{published: map[string]int{}, outcomes: map[string]string{}}
}

func (m *recordingMetrics) IncidentPublished(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published[source]++
}

func (m *recordingMetrics) RenderOutcome(renderer, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[renderer] = outcome
}

func newReport(name string) models.Incident {
	return models.Incident{
		Coords:   models.Coordinates{Lat: 40.73, Lon: -73.99},
		Type:     models.IncidentFlood,
		Severity: models.SeverityLow,
		Reporter: models.Reporter{
			Name:    name,
			Contact: "+1 555-0321",
			Role:    models.RoleMedic,
			Trust:   90,
		},
		Description: "Basement flooding on 5th street.",
	}
}
