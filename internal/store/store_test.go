package store_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/repository"
	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	"github.com/shenikar/crisis_relief_coordinator/internal/store/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newIncident(id int64) models.Incident {
	return models.Incident{
		ID:       id,
		Coords:   models.Coordinates{Lat: 40.71, Lon: -74.01},
		Type:     models.IncidentFlood,
		Severity: models.SeverityMedium,
		Time:     "Just now",
		Reporter: models.Reporter{
			Name:    "Ellen Ripley",
			Avatar:  "https://ui-avatars.com/api/?name=3&background=random",
			Contact: "+1 555-0456",
			Role:    models.RoleGridWorker,
			Trust:   91,
		},
		Description: "Emergency reported at Sector 3.",
	}
}

func TestInitialize_EmptyBackendInstallsDefaults(t *testing.T) {
	s := store.New(repository.NewMemoryRepository(), newTestLogger())

	s.Initialize(context.Background())

	assert.Len(t, s.Incidents(), 2)
	assert.Len(t, s.Resources(), 6)
	assert.Len(t, s.Volunteers(), 5)
	assert.Equal(t, store.DefaultIncidents(), s.Incidents())
	assert.Equal(t, store.DefaultResources(), s.Resources())
	assert.Equal(t, store.DefaultVolunteers(), s.Volunteers())
}

func TestPersist_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := repository.NewMemoryRepository()
	original := store.New(backend, newTestLogger())
	original.Initialize(ctx)
	require.NoError(t, original.AddIncident(ctx, newIncident(1700000000001)))
	require.NoError(t, original.Persist(ctx))

	reloaded := store.New(backend, newTestLogger())
	reloaded.Initialize(ctx)

	assert.Equal(t, original.Incidents(), reloaded.Incidents())
	assert.Equal(t, original.Resources(), reloaded.Resources())
	assert.Equal(t, original.Volunteers(), reloaded.Volunteers())
	assert.Equal(t, "Ellen Ripley", reloaded.Incidents()[0].Reporter.Name)
	assert.Equal(t, 91, reloaded.Incidents()[0].Reporter.Trust)
}

func TestInitialize_MalformedRecordFallsBackPerCollection(t *testing.T) {
	ctx := context.Background()
	backend := repository.NewMemoryRepository()
	require.NoError(t, backend.Set(ctx, "crc_incidents", []byte(`{not json`)))
	require.NoError(t, backend.Set(ctx, "crc_resources", []byte(`null`)))
	require.NoError(t, backend.Set(ctx, "crc_volunteers", []byte(`[]`)))

	s := store.New(backend, newTestLogger())
	s.Initialize(ctx)

	assert.Equal(t, store.DefaultIncidents(), s.Incidents())
	assert.Equal(t, store.DefaultResources(), s.Resources())
	// Пустой массив - валидное сохраненное состояние
	assert.Empty(t, s.Volunteers())
}

type recordingObserver struct {
	fallbacks []string
}

func (o *recordingObserver) PersistenceReadFallback(collection string) {
	o.fallbacks = append(o.fallbacks, collection)
}

func (o *recordingObserver) PersistenceWriteFailed(string) {}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestInitialize_InvalidIncidentsFallBack(t *testing.T) {
	outOfRange := newIncident(5)
	outOfRange.Coords = models.Coordinates{Lat: 512, Lon: -900}
	overTrusted := newIncident(6)
	overTrusted.Reporter.Trust = 250

	tests := []struct {
		name      string
		incidents []models.Incident
	}{
		{name: "coords out of range", incidents: []models.Incident{outOfRange}},
		{name: "trust above 100", incidents: []models.Incident{overTrusted}},
		{name: "duplicate ids", incidents: []models.Incident{newIncident(5), newIncident(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка
			ctx := context.Background()
			backend := repository.NewMemoryRepository()
			require.NoError(t, backend.Set(ctx, "crc_incidents", mustJSON(t, tt.incidents)))
			observer := &recordingObserver{}
			s := store.New(backend, newTestLogger(), store.WithObserver(observer))

			// Действие
			s.Initialize(ctx)

			// Проверки
			assert.Equal(t, store.DefaultIncidents(), s.Incidents())
			assert.Contains(t, observer.fallbacks, "incidents")
		})
	}
}

func TestInitialize_NegativeQuantityFallsBack(t *testing.T) {
	ctx := context.Background()
	backend := repository.NewMemoryRepository()
	resources := store.DefaultResources()
	resources[0].Quantity = -40
	require.NoError(t, backend.Set(ctx, "crc_resources", mustJSON(t, resources)))
	require.NoError(t, backend.Set(ctx, "crc_incidents", mustJSON(t, []models.Incident{newIncident(5)})))

	s := store.New(backend, newTestLogger())
	s.Initialize(ctx)

	assert.Equal(t, store.DefaultResources(), s.Resources())
	// Валидная коллекция загружается независимо от соседней
	require.Len(t, s.Incidents(), 1)
	assert.Equal(t, int64(5), s.Incidents()[0].ID)
}

func TestInitialize_BackendReadErrorFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	backend.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(3)

	s := store.New(backend, newTestLogger())
	s.Initialize(context.Background())

	assert.Len(t, s.Incidents(), 2)
	assert.Len(t, s.Resources(), 6)
	assert.Len(t, s.Volunteers(), 5)
}

func TestInitialize_UsesKeyPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	backend.EXPECT().Get(gomock.Any(), "dash_incidents").Return(nil, store.ErrKeyNotFound).Times(1)
	backend.EXPECT().Get(gomock.Any(), "dash_resources").Return(nil, store.ErrKeyNotFound).Times(1)
	backend.EXPECT().Get(gomock.Any(), "dash_volunteers").Return(nil, store.ErrKeyNotFound).Times(1)

	s := store.New(backend, newTestLogger(), store.WithKeyPrefix("dash_"))
	s.Initialize(context.Background())

	assert.Equal(t, "dash_incidents", s.Key("incidents"))
}

func TestAddIncident_InsertsAtFront(t *testing.T) {
	ctx := context.Background()
	s := store.New(repository.NewMemoryRepository(), newTestLogger())
	s.Initialize(ctx)
	before := s.Incidents()

	require.NoError(t, s.AddIncident(ctx, newIncident(1700000000001)))
	require.NoError(t, s.AddIncident(ctx, newIncident(1700000000002)))

	incidents := s.Incidents()
	require.Len(t, incidents, len(before)+2)
	assert.Equal(t, int64(1700000000002), incidents[0].ID)
	assert.Equal(t, int64(1700000000001), incidents[1].ID)
	assert.Equal(t, before, incidents[2:])
	assert.Equal(t, int64(1700000000002), s.MaxIncidentID())
}

func TestAddIncident_PersistFailureKeepsMemoryState(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	ctx := context.Background()

	backend.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, store.ErrKeyNotFound).Times(3)
	backend.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("quota exceeded")).
		Times(3)

	s := store.New(backend, newTestLogger())
	s.Initialize(ctx)

	err := s.AddIncident(ctx, newIncident(1700000000001))

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrPersistenceWrite)
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Equal(t, int64(1700000000001), s.Incidents()[0].ID)
}

func TestAddIncident_ValidationRejects(t *testing.T) {
	ctx := context.Background()
	s := store.New(repository.NewMemoryRepository(), newTestLogger())
	s.Initialize(ctx)

	bad := newIncident(1700000000001)
	bad.Coords.Lat = 123.0

	err := s.AddIncident(ctx, bad)

	assert.ErrorIs(t, err, store.ErrInvalidIncident)
	assert.Len(t, s.Incidents(), 2)
}

func TestAddIncident_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	s := store.New(repository.NewMemoryRepository(), newTestLogger())
	s.Initialize(ctx)

	err := s.AddIncident(ctx, newIncident(17192834))

	assert.ErrorIs(t, err, store.ErrDuplicateIncident)
	assert.Len(t, s.Incidents(), 2)
}

func TestIncidents_ReturnsSnapshot(t *testing.T) {
	s := store.New(repository.NewMemoryRepository(), newTestLogger())
	s.Initialize(context.Background())

	snapshot := s.Incidents()
	snapshot[0].Type = models.IncidentFlood

	assert.Equal(t, models.IncidentFire, s.Incidents()[0].Type)
}

func TestFindIncident(t *testing.T) {
	s := store.New(repository.NewMemoryRepository(), newTestLogger())
	s.Initialize(context.Background())

	incident, ok := s.FindIncident(17192835)
	require.True(t, ok)
	assert.Equal(t, models.IncidentMedical, incident.Type)

	_, ok = s.FindIncident(999)
	assert.False(t, ok)
}

func TestReset_RestoresDefaults(t *testing.T) {
	ctx := context.Background()
	backend := repository.NewMemoryRepository()
	s := store.New(backend, newTestLogger())
	s.Initialize(ctx)
	require.NoError(t, s.AddIncident(ctx, newIncident(1700000000001)))

	require.NoError(t, s.Reset(ctx))

	assert.Equal(t, store.DefaultIncidents(), s.Incidents())
	_, err := backend.Get(ctx, "crc_incidents")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}
