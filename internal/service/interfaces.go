package service

import (
	"context"
	"time"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
)

//go:generate mockgen -destination=mocks/mock_renderer.go -package=mocks . Renderer,Notifier

// StoreReader - узкий интерфейс чтения, который получают рендереры
type StoreReader interface {
	Incidents() []models.Incident
	Resources() []models.Resource
	Volunteers() []models.Volunteer
	FindIncident(id int64) (models.Incident, bool)
}

// IncidentStore определяет контракт хранилища сущностей
type IncidentStore interface {
	StoreReader
	AddIncident(ctx context.Context, incident models.Incident) error
	MaxIncidentID() int64
	Reset(ctx context.Context) error
}

// Renderer полностью перерисовывает свою область представления по текущему состоянию.
// Если области нет на текущей странице, возвращает ErrTargetAbsent.
type Renderer interface {
	Name() string
	Render(ctx context.Context, store StoreReader) error
}

// Notifier показывает временное уведомление пользователю
type Notifier interface {
	Raise(kind, message string)
}

// SamplePusher добавляет точку в скользящий ряд графика тренда
type SamplePusher interface {
	Push(value float64)
}

// Rand - источник случайности симуляции. *rand.Rand удовлетворяет интерфейсу.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// TickScheduler повторяет задачу с фиксированным периодом; запуски не перекрываются
type TickScheduler interface {
	Schedule(ctx context.Context, period time.Duration, job func(ctx context.Context)) error
}

// Metrics получает события движка синхронизации
type Metrics interface {
	IncidentPublished(source string)
	RenderOutcome(renderer, outcome string)
}

type nopNotifier struct{}

func (nopNotifier) Raise(string, string) {}

type nopSamplePusher struct{}

func (nopSamplePusher) Push(float64) {}

type nopMetrics struct{}

func (nopMetrics) IncidentPublished(string)     {}
func (nopMetrics) RenderOutcome(string, string) {}
