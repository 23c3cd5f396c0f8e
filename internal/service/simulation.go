package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	SourceSimulation = "simulation"
	SourceManual     = "manual"

	notificationAlert = "alert"
)

var reporterNames = []string{"Michael Barnes", "Sarah Connor", "Rick Deckard", "Ellen Ripley", "John Wick"}

// SimulationConfig - параметры генератора синтетических инцидентов
type SimulationConfig struct {
	Period         time.Duration
	Probability    float64
	BaseLat        float64
	BaseLon        float64
	JitterRadius   float64
	TrendSampleMax int
}

func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Period:         15 * time.Second,
		Probability:    0.15,
		BaseLat:        40.7,
		BaseLon:        -74.0,
		JitterRadius:   0.05,
		TrendSampleMax: 10,
	}
}

// SimulationOption настраивает SimulationEngine
type SimulationOption func(*SimulationEngine)

func WithRand(rng Rand) SimulationOption {
	return func(e *SimulationEngine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithIDGenerator(ids *IDGenerator) SimulationOption {
	return func(e *SimulationEngine) {
		if ids != nil {
			e.ids = ids
		}
	}
}

func WithNotifier(n Notifier) SimulationOption {
	return func(e *SimulationEngine) {
		if n != nil {
			e.notifier = n
		}
	}
}

func WithTrend(t SamplePusher) SimulationOption {
	return func(e *SimulationEngine) {
		if t != nil {
			e.trend = t
		}
	}
}

func WithMetrics(m Metrics) SimulationOption {
	return func(e *SimulationEngine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// SimulationEngine - единственный автономный источник новых инцидентов
type SimulationEngine struct {
	store       IncidentStore
	coordinator *Coordinator
	notifier    Notifier
	trend       SamplePusher
	metrics     Metrics
	ids         *IDGenerator
	cfg         SimulationConfig
	logger      *logrus.Logger

	rngMu  sync.Mutex
	rng    Rand
	tickMu sync.Mutex
}

func NewSimulationEngine(store IncidentStore, coordinator *Coordinator, cfg SimulationConfig, logger *logrus.Logger, opts ...SimulationOption) *SimulationEngine {
	e := &SimulationEngine{
		store:       store,
		coordinator: coordinator,
		notifier:    nopNotifier{},
		trend:       nopSamplePusher{},
		metrics:     nopMetrics{},
		cfg:         cfg,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.ids == nil {
		e.ids = NewIDGenerator(time.Now, store.MaxIncidentID())
	}
	return e
}

func (e *SimulationEngine) Config() SimulationConfig {
	return e.cfg
}

// NextID выдает id для нового инцидента
func (e *SimulationEngine) NextID() int64 {
	return e.ids.Next()
}

// ScheduleTick регистрирует Tick в планировщике с периодом из конфигурации
func (e *SimulationEngine) ScheduleTick(ctx context.Context, scheduler TickScheduler) error {
	if err := scheduler.Schedule(ctx, e.cfg.Period, e.runTick); err != nil {
		return fmt.Errorf("service: could not schedule simulation: %w", err)
	}
	return nil
}

func (e *SimulationEngine) runTick(ctx context.Context) {
	if _, err := e.Tick(ctx); err != nil {
		e.logger.WithFields(logrus.Fields{
			"service": "simulation",
			"method":  "Tick",
		}).WithError(err).Error("Simulation tick failed")
	}
}

// Tick - одна итерация расписания: с вероятностью Probability генерирует инцидент.
// Если предыдущий тик еще выполняется, текущий пропускается.
func (e *SimulationEngine) Tick(ctx context.Context) (bool, error) {
	if !e.tickMu.TryLock() {
		e.logger.WithFields(logrus.Fields{
			"service": "simulation",
			"method":  "Tick",
		}).Warn("Previous tick still running, skipping")
		return false, nil
	}
	defer e.tickMu.Unlock()

	e.rngMu.Lock()
	roll := e.rng.Float64()
	e.rngMu.Unlock()

	if roll >= e.cfg.Probability {
		return false, nil
	}
	if _, err := e.Trigger(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Trigger генерирует инцидент и публикует его немедленно
func (e *SimulationEngine) Trigger(ctx context.Context) (models.Incident, error) {
	incident := e.GenerateIncident()
	if err := e.Publish(ctx, incident, SourceSimulation); err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

// GenerateIncident собирает правдоподобный инцидент вокруг базовой точки
func (e *SimulationEngine) GenerateIncident() models.Incident {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()

	incidentType := models.IncidentTypes[e.rng.Intn(len(models.IncidentTypes))]
	severity := models.SeverityMedium
	if e.rng.Float64() < 0.5 {
		severity = models.SeverityHigh
	}
	lat := e.cfg.BaseLat + (e.rng.Float64()*2-1)*e.cfg.JitterRadius
	lon := e.cfg.BaseLon + (e.rng.Float64()*2-1)*e.cfg.JitterRadius

	reporter := models.Reporter{
		Name:    reporterNames[e.rng.Intn(len(reporterNames))],
		Avatar:  fmt.Sprintf("https://ui-avatars.com/api/?name=%d&background=random", e.rng.Intn(10)+1),
		Contact: fmt.Sprintf("+1 555-0%d", 100+e.rng.Intn(900)),
		Role:    models.ReporterRoles[e.rng.Intn(len(models.ReporterRoles))],
		Trust:   80 + e.rng.Intn(20),
	}

	return models.Incident{
		ID:       e.ids.Next(),
		Coords:   models.Coordinates{Lat: lat, Lon: lon},
		Type:     incidentType,
		Severity: severity,
		Time:     "Just now",
		Reporter: reporter,
		Description: fmt.Sprintf(
			"Emergency reported at Sector %d. Witness claims %s is expanding rapidly. Immediate assistance requested.",
			e.rng.Intn(9), strings.ToLower(string(incidentType)),
		),
	}
}

// Publish добавляет инцидент в хранилище, сдвигает ряд тренда (только для source
// simulation) и перерисовывает представления одной критической секцией, затем
// показывает уведомление.
func (e *SimulationEngine) Publish(ctx context.Context, incident models.Incident, source string) error {
	log := e.logger.WithFields(logrus.Fields{
		"service":     "simulation",
		"method":      "Publish",
		"source":      source,
		"incident_id": incident.ID,
	})

	// Ряд тренда отражает только поток симуляции
	pushSample := source == SourceSimulation
	var sample float64
	if pushSample {
		sample = e.nextSample()
	}
	report, err := e.coordinator.Commit(ctx, func(ctx context.Context) error {
		err := e.store.AddIncident(ctx, incident)
		if err != nil && !errors.Is(err, store.ErrPersistenceWrite) {
			return err
		}
		if pushSample {
			e.trend.Push(sample)
		}
		return err
	})
	if err != nil {
		if !errors.Is(err, store.ErrPersistenceWrite) {
			log.WithError(err).Error("Failed to add incident")
			return fmt.Errorf("service: could not publish incident: %w", err)
		}
		log.WithError(err).Warn("Incident kept in memory but not persisted")
	}

	e.metrics.IncidentPublished(source)
	e.notifier.Raise(notificationAlert, fmt.Sprintf("New %s Incident reported by %s", incident.Type, incident.Reporter.Name))
	log.WithFields(logrus.Fields{
		"type":     incident.Type,
		"severity": incident.Severity,
		"rendered": len(report.Rendered),
		"skipped":  len(report.Skipped),
		"failed":   len(report.Failed),
	}).Info("Incident published")
	return nil
}

func (e *SimulationEngine) nextSample() float64 {
	if e.cfg.TrendSampleMax <= 0 {
		return 0
	}
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return float64(e.rng.Intn(e.cfg.TrendSampleMax))
}
