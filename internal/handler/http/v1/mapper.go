package v1

import (
	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/views"
)

// DTOToIncidentModel преобразует DTO ручной регистрации в доменную модель.
// ID и время назначает сервис.
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Coords:      models.Coordinates{Lat: dto.Latitude, Lon: dto.Longitude},
		Type:        models.IncidentType(dto.Type),
		Severity:    models.Severity(dto.Severity),
		Description: dto.Description,
		Reporter: models.Reporter{
			Name:    dto.Reporter.Name,
			Avatar:  dto.Reporter.Avatar,
			Contact: dto.Reporter.Contact,
			Role:    models.ReporterRole(dto.Reporter.Role),
			Trust:   dto.Reporter.Trust,
		},
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Latitude:    model.Coords.Lat,
		Longitude:   model.Coords.Lon,
		Type:        string(model.Type),
		Severity:    string(model.Severity),
		Time:        model.Time,
		Description: model.Description,
		Reporter:    model.Reporter,
		Color:       views.SeverityColor(model.Severity),
		DetailURL:   views.DetailURL(model.ID),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i := range models {
		responses[i] = ModelToIncidentResponse(&models[i])
	}
	return responses
}
