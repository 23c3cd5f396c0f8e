package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	collectionIncidents  = "incidents"
	collectionResources  = "resources"
	collectionVolunteers = "volunteers"
)

// Store - единственная авторитетная копия инцидентов, ресурсов и волонтеров сессии.
// Инциденты хранятся от новых к старым: индекс 0 всегда самый свежий.
type Store struct {
	mu         sync.RWMutex
	persistMu  sync.Mutex
	backend    Backend
	logger     *logrus.Logger
	validate   *validator.Validate
	observer   Observer
	prefix     string
	incidents  []models.Incident
	resources  []models.Resource
	volunteers []models.Volunteer
}

func New(backend Backend, logger *logrus.Logger, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		logger:   logger,
		validate: validator.New(),
		observer: nopObserver{},
		prefix:   DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key возвращает ключ коллекции в backend'е
func (s *Store) Key(collection string) string {
	return s.prefix + collection
}

// Initialize восстанавливает коллекции из backend'а. Отсутствующая или битая запись
// заменяется seed-данными, ошибка наружу не выходит.
func (s *Store) Initialize(ctx context.Context) {
	incidents, ok := load(ctx, s, collectionIncidents, uniqueIncidentIDs)
	if !ok {
		incidents = DefaultIncidents()
	}
	resources, ok := load[models.Resource](ctx, s, collectionResources)
	if !ok {
		resources = DefaultResources()
	}
	volunteers, ok := load[models.Volunteer](ctx, s, collectionVolunteers)
	if !ok {
		volunteers = DefaultVolunteers()
	}

	s.mu.Lock()
	s.incidents = incidents
	s.resources = resources
	s.volunteers = volunteers
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"service":    "store",
		"method":     "Initialize",
		"incidents":  len(incidents),
		"resources":  len(resources),
		"volunteers": len(volunteers),
	}).Info("Store initialized")
}

// load читает коллекцию и проверяет ее теми же правилами, что и запись.
// Любое нарушение считается ошибкой чтения: коллекция заменяется seed-данными.
func load[T any](ctx context.Context, s *Store, collection string, checks ...func([]T) error) ([]T, bool) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "store",
		"method":     "load",
		"collection": collection,
	})

	raw, err := s.backend.Get(ctx, s.Key(collection))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			log.Debug("No persisted data, using defaults")
		} else {
			log.WithError(err).Warn("Failed to read persisted data, using defaults")
		}
		s.observer.PersistenceReadFallback(collection)
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.WithError(err).Warn("Malformed persisted data, using defaults")
		s.observer.PersistenceReadFallback(collection)
		return nil, false
	}
	// "null" считается отсутствием данных, пустой массив - валидным состоянием
	if items == nil {
		s.observer.PersistenceReadFallback(collection)
		return nil, false
	}
	if err := checkLoaded(s.validate, items, checks); err != nil {
		log.WithError(err).Warn("Persisted data violates store invariants, using defaults")
		s.observer.PersistenceReadFallback(collection)
		return nil, false
	}
	return items, true
}

func checkLoaded[T any](validate *validator.Validate, items []T, checks []func([]T) error) error {
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	for _, check := range checks {
		if err := check(items); err != nil {
			return err
		}
	}
	return nil
}

func uniqueIncidentIDs(incidents []models.Incident) error {
	seen := make(map[int64]struct{}, len(incidents))
	for _, incident := range incidents {
		if _, ok := seen[incident.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateIncident, incident.ID)
		}
		seen[incident.ID] = struct{}{}
	}
	return nil
}

// Persist сериализует все коллекции и записывает их в backend.
// Ошибка записи не откатывает состояние в памяти.
func (s *Store) Persist(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	payloads := map[string]any{
		collectionIncidents:  s.incidents,
		collectionResources:  s.resources,
		collectionVolunteers: s.volunteers,
	}
	encoded := make(map[string][]byte, len(payloads))
	var errs []error
	for collection, items := range payloads {
		data, err := json.Marshal(items)
		if err != nil {
			errs = append(errs, fmt.Errorf("marshal %s: %w", collection, err))
			continue
		}
		encoded[collection] = data
	}
	s.mu.RUnlock()

	for _, collection := range []string{collectionIncidents, collectionResources, collectionVolunteers} {
		data, ok := encoded[collection]
		if !ok {
			continue
		}
		if err := s.backend.Set(ctx, s.Key(collection), data); err != nil {
			s.observer.PersistenceWriteFailed(collection)
			errs = append(errs, fmt.Errorf("write %s: %w", collection, err))
		}
	}

	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", ErrPersistenceWrite, errors.Join(errs...))
		s.logger.WithFields(logrus.Fields{
			"service": "store",
			"method":  "Persist",
		}).WithError(err).Error("Failed to persist store")
		return err
	}
	return nil
}

// AddIncident добавляет инцидент в начало коллекции и сразу сохраняет состояние
func (s *Store) AddIncident(ctx context.Context, incident models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "store",
		"method":      "AddIncident",
		"incident_id": incident.ID,
	})

	if err := s.validate.Struct(incident); err != nil {
		log.WithError(err).Warn("Incident rejected by validation")
		return fmt.Errorf("%w: %w", ErrInvalidIncident, err)
	}

	s.mu.Lock()
	for _, existing := range s.incidents {
		if existing.ID == incident.ID {
			s.mu.Unlock()
			log.Warn("Incident id already present")
			return fmt.Errorf("%w: %d", ErrDuplicateIncident, incident.ID)
		}
	}
	s.incidents = append([]models.Incident{incident}, s.incidents...)
	s.mu.Unlock()

	if err := s.Persist(ctx); err != nil {
		return fmt.Errorf("incident %d kept in memory: %w", incident.ID, err)
	}
	log.Debug("Incident added")
	return nil
}

// Reset удаляет сохраненное состояние и возвращает seed-данные
func (s *Store) Reset(ctx context.Context) error {
	var errs []error
	for _, collection := range []string{collectionIncidents, collectionResources, collectionVolunteers} {
		if err := s.backend.Delete(ctx, s.Key(collection)); err != nil && !errors.Is(err, ErrKeyNotFound) {
			errs = append(errs, fmt.Errorf("delete %s: %w", collection, err))
		}
	}

	s.mu.Lock()
	s.incidents = DefaultIncidents()
	s.resources = DefaultResources()
	s.volunteers = DefaultVolunteers()
	s.mu.Unlock()

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, errors.Join(errs...))
	}
	return nil
}

// Incidents возвращает снимок коллекции инцидентов, от новых к старым
func (s *Store) Incidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Incident(nil), s.incidents...)
}

func (s *Store) Resources() []models.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Resource(nil), s.resources...)
}

func (s *Store) Volunteers() []models.Volunteer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Volunteer(nil), s.volunteers...)
}

// FindIncident ищет инцидент по id
func (s *Store) FindIncident(id int64) (models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, incident := range s.incidents {
		if incident.ID == id {
			return incident, true
		}
	}
	return models.Incident{}, false
}

// MaxIncidentID возвращает наибольший id среди инцидентов (0 для пустой коллекции)
func (s *Store) MaxIncidentID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var maxID int64
	for _, incident := range s.incidents {
		if incident.ID > maxID {
			maxID = incident.ID
		}
	}
	return maxID
}
