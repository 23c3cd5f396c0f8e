package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/notify"
	"github.com/shenikar/crisis_relief_coordinator/internal/views"
)

// ReporterRequest DTO с данными заявителя
// @Description DTO с данными заявителя
type ReporterRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Avatar  string `json:"avatar,omitempty" validate:"omitempty,url"`
	Contact string `json:"contact,omitempty" validate:"max=32"`
	Role    string `json:"role" validate:"required,reporter_role"`
	Trust   int    `json:"trust" validate:"gte=0,lte=100"`
}

// CreateIncidentRequest DTO для ручной регистрации инцидента
// @Description DTO для ручной регистрации инцидента
type CreateIncidentRequest struct {
	Latitude    float64         `json:"latitude" validate:"latitude"`
	Longitude   float64         `json:"longitude" validate:"longitude"`
	Type        string          `json:"type" validate:"required,incident_type"`
	Severity    string          `json:"severity" validate:"required,oneof=high medium low"`
	Description string          `json:"description,omitempty" validate:"max=1000"`
	Reporter    ReporterRequest `json:"reporter"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          int64           `json:"id"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Type        string          `json:"type"`
	Severity    string          `json:"severity"`
	Time        string          `json:"time"`
	Description string          `json:"description,omitempty"`
	Reporter    models.Reporter `json:"reporter"`
	Color       string          `json:"color"`
	DetailURL   string          `json:"detail_url"`
}

// DashboardResponse DTO с последним состоянием всех областей дашборда
// @Description DTO с последним состоянием всех областей дашборда
type DashboardResponse struct {
	Version       uint64                 `json:"version"`
	Regions       map[views.Region]any   `json:"regions"`
	Notifications []NotificationResponse `json:"notifications"`
}

// FocusResponse DTO с командами центрирования карт
// @Description DTO с командами центрирования карт
type FocusResponse struct {
	IncidentID int64            `json:"incident_id"`
	Focus      []views.MapFocus `json:"focus"`
}

// NotificationResponse DTO активного уведомления
// @Description DTO активного уведомления
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

func notificationResponses(items []notify.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(items))
	for i, n := range items {
		out[i] = NotificationResponse{ID: n.ID, Kind: n.Kind, Message: n.Message, ExpiresAt: n.ExpiresAt}
	}
	return out
}
