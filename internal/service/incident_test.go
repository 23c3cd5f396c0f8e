package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/service"
	"github.com/shenikar/crisis_relief_coordinator/internal/service/mocks"
	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	storemocks "github.com/shenikar/crisis_relief_coordinator/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService - вспомогательная функция для создания сервиса поверх хранилища s
func newTestIncidentService(t *testing.T, s service.IncidentStore, opts ...service.SimulationOption) (service.IncidentService, *service.Coordinator) {
	t.Helper()
	logger := newTestLogger()
	c := service.NewCoordinator(s, logger, nil)
	e := service.NewSimulationEngine(s, c, service.DefaultSimulationConfig(), logger, opts...)
	return service.NewIncidentService(s, c, e, service.NewDetailResolver(s), logger), c
}

func TestReportIncident_AssignsIDAndPublishes(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	s := newTestStore(t)
	notifier := mocks.NewMockNotifier(ctrl)
	svc, c := newTestIncidentService(t, s,
		service.WithNotifier(notifier),
		service.WithIDGenerator(service.NewIDGenerator(fixedClock(1700000000123), 0)),
	)
	renderer := newMockRenderer(ctrl, "feed:alert-feed")
	c.RegisterRenderer(renderer)
	incident := newReport("Sarah Connor")

	// Ожидания
	renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	notifier.EXPECT().Raise("alert", "New Flood Incident reported by Sarah Connor").Times(1)

	// Действие
	err := svc.ReportIncident(context.Background(), &incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000123), incident.ID)
	assert.Equal(t, "Just now", incident.Time)
	assert.Equal(t, incident, s.Incidents()[0])
}

func TestReportIncident_DoesNotPushTrendSample(t *testing.T) {
	// Подготовка
	s := newTestStore(t)
	trend := &recordingTrend{}
	svc, _ := newTestIncidentService(t, s, service.WithTrend(trend))
	incident := newReport("Ellen Ripley")

	// Действие
	require.NoError(t, svc.ReportIncident(context.Background(), &incident))
	_, err := svc.TriggerIncident(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Len(t, trend.values, 1)
	assert.Len(t, s.Incidents(), 4)
}

func TestReportIncident_ValidationError(t *testing.T) {
	// Подготовка
	s := newTestStore(t)
	svc, _ := newTestIncidentService(t, s)
	incident := newReport("Rick Deckard")
	incident.Severity = models.Severity("catastrophic")

	// Действие
	err := svc.ReportIncident(context.Background(), &incident)

	// Проверки
	assert.ErrorIs(t, err, store.ErrInvalidIncident)
	assert.Len(t, svc.ListIncidents(context.Background()), 2)
}

func TestTriggerIncident(t *testing.T) {
	s := newTestStore(t)
	svc, _ := newTestIncidentService(t, s)

	incident, err := svc.TriggerIncident(context.Background())

	require.NoError(t, err)
	require.NotNil(t, incident)
	assert.Equal(t, *incident, s.Incidents()[0])
}

func TestGetIncident(t *testing.T) {
	svc, _ := newTestIncidentService(t, newTestStore(t))
	ctx := context.Background()

	incident, err := svc.GetIncident(ctx, "17192834")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentFire, incident.Type)

	incident, err = svc.GetIncident(ctx, "999")
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
	assert.Nil(t, incident)
}

func TestListCollections(t *testing.T) {
	s := newTestStore(t)
	svc, _ := newTestIncidentService(t, s)
	ctx := context.Background()

	assert.Equal(t, s.Incidents(), svc.ListIncidents(ctx))
	assert.Equal(t, s.Resources(), svc.ListResources(ctx))
	assert.Equal(t, s.Volunteers(), svc.ListVolunteers(ctx))
}

func TestResetState_RestoresDefaultsAndRenders(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	s := newTestStore(t)
	svc, c := newTestIncidentService(t, s)
	_, err := svc.TriggerIncident(context.Background())
	require.NoError(t, err)
	renderer := newMockRenderer(ctrl, "feed:alert-feed")
	c.RegisterRenderer(renderer)

	// Ожидания
	renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Действие
	err = svc.ResetState(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, store.DefaultIncidents(), s.Incidents())
}

func TestResetState_BackendFailureStillResetsMemory(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	backend := storemocks.NewMockBackend(ctrl)
	backend.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, store.ErrKeyNotFound).Times(3)
	backend.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")).Times(3)
	s := store.New(backend, newTestLogger())
	s.Initialize(context.Background())
	svc, _ := newTestIncidentService(t, s)

	// Действие
	err := svc.ResetState(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, store.DefaultIncidents(), s.Incidents())
}
