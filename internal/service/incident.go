package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentService определяет контракт для бизнес-логики дашборда
type IncidentService interface {
	ReportIncident(ctx context.Context, incident *models.Incident) error
	TriggerIncident(ctx context.Context) (*models.Incident, error)
	GetIncident(ctx context.Context, rawID string) (*models.Incident, error)
	ListIncidents(ctx context.Context) []models.Incident
	ListResources(ctx context.Context) []models.Resource
	ListVolunteers(ctx context.Context) []models.Volunteer
	ResetState(ctx context.Context) error
}

type incidentService struct {
	store       IncidentStore
	coordinator *Coordinator
	engine      *SimulationEngine
	resolver    *DetailResolver
	logger      *logrus.Logger
}

func NewIncidentService(store IncidentStore, coordinator *Coordinator, engine *SimulationEngine, resolver *DetailResolver, logger *logrus.Logger) IncidentService {
	return &incidentService{
		store:       store,
		coordinator: coordinator,
		engine:      engine,
		resolver:    resolver,
		logger:      logger,
	}
}

// ReportIncident - ручной путь добавления инцидента; id и время назначает сервис
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to report a new incident")

	incident.ID = s.engine.NextID()
	incident.Time = "Just now"
	if err := s.engine.Publish(ctx, *incident, SourceManual); err != nil {
		log.WithError(err).Error("Failed to publish incident")
		return fmt.Errorf("service: could not report incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

// TriggerIncident немедленно генерирует синтетический инцидент
func (s *incidentService) TriggerIncident(ctx context.Context) (*models.Incident, error) {
	incident, err := s.engine.Trigger(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not trigger incident: %w", err)
	}
	return &incident, nil
}

// GetIncident находит инцидент для страницы деталей
func (s *incidentService) GetIncident(ctx context.Context, rawID string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": rawID,
	})
	log.Debug("Resolving incident")

	incident, err := s.resolver.Resolve(rawID)
	if err != nil {
		log.WithError(err).Info("Incident not resolved")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return &incident, nil
}

func (s *incidentService) ListIncidents(_ context.Context) []models.Incident {
	return s.store.Incidents()
}

func (s *incidentService) ListResources(_ context.Context) []models.Resource {
	return s.store.Resources()
}

func (s *incidentService) ListVolunteers(_ context.Context) []models.Volunteer {
	return s.store.Volunteers()
}

// ResetState возвращает seed-данные и перерисовывает представления
func (s *incidentService) ResetState(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ResetState",
	})

	_, err := s.coordinator.Commit(ctx, s.store.Reset)
	if err != nil {
		if errors.Is(err, store.ErrPersistenceWrite) {
			log.WithError(err).Warn("State reset in memory but backend not cleared")
			return nil
		}
		log.WithError(err).Error("Failed to reset state")
		return fmt.Errorf("service: could not reset state: %w", err)
	}
	log.Info("State reset to defaults")
	return nil
}
