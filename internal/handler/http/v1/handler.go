package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_relief_coordinator/internal/config"
	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/notify"
	"github.com/shenikar/crisis_relief_coordinator/internal/service"
	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	"github.com/shenikar/crisis_relief_coordinator/internal/views"
	"github.com/sirupsen/logrus"
)

// NotificationLister отдает видимые уведомления
type NotificationLister interface {
	Active() []notify.Notification
}

type Handler struct {
	incidentService service.IncidentService
	reader          service.StoreReader
	board           *views.Board
	notifications   NotificationLister
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	reader service.StoreReader,
	board *views.Board,
	notifications NotificationLister,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		reader:          reader,
		board:           board,
		notifications:   notifications,
		logger:          logger,
		validate:        newValidator(),
		cfg:             cfg,
	}
}

// customRules - теги валидации DTO, которых нет в validator
var customRules = map[string]validator.Func{
	"incident_type": func(fl validator.FieldLevel) bool {
		for _, t := range models.IncidentTypes {
			if fl.Field().String() == string(t) {
				return true
			}
		}
		return false
	},
	"reporter_role": func(fl validator.FieldLevel) bool {
		for _, r := range models.ReporterRoles {
			if fl.Field().String() == string(r) {
				return true
			}
		}
		return false
	},
}

// newValidator паникует, если правило не зарегистрировалось: это ошибка программы
func newValidator() *validator.Validate {
	v := validator.New()
	if err := registerRules(v, customRules); err != nil {
		panic(err)
	}
	return v
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("handler: could not register %q validation: %w", tag, err)
		}
	}
	return nil
}

// @Summary Get the dashboard
// @Description Get the last rendered state of every dashboard region plus active notifications
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, DashboardResponse{
		Version:       h.board.Version(),
		Regions:       h.board.Snapshot(),
		Notifications: notificationResponses(h.notifications.Active()),
	})
}

// @Summary Get a list of incidents
// @Description Get all incidents, newest first
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	incidents := h.incidentService.ListIncidents(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Report a new incident
// @Description Register an incident manually. The incident is stored, persisted and every view is refreshed.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Duplicate incident id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.ReportIncident(c.Request.Context(), model); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidIncident):
			log.WithError(err).Warn("Incident rejected by store")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident"})
		case errors.Is(err, store.ErrDuplicateIncident):
			log.WithError(err).Warn("Duplicate incident")
			c.JSON(http.StatusConflict, gin.H{"error": "incident already exists"})
		default:
			log.WithError(err).Error("Failed to report incident in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Focus maps on an incident
// @Description Get fly-to commands for the maps present on the dashboard
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} FocusResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/focus [get]
func (h *Handler) focusIncident(c *gin.Context) {
	log := h.logger.WithField("method", "focusIncident").WithField("id", c.Param("id"))

	incident, err := h.incidentService.GetIncident(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, FocusResponse{IncidentID: incident.ID, Focus: views.FlyTo(h.board, incident.Coords)})
}

// @Summary Get resources
// @Description Get the resource inventory
// @Tags Inventory
// @Produce json
// @Success 200 {array} models.Resource
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.ListResources(c.Request.Context()))
}

// @Summary Get volunteers
// @Description Get the volunteer roster
// @Tags Inventory
// @Produce json
// @Success 200 {array} models.Volunteer
// @Router /volunteers [get]
func (h *Handler) listVolunteers(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.ListVolunteers(c.Request.Context()))
}

// @Summary Get incident detail page
// @Description Render the detail page for one incident. Unknown or missing ids render the not-found state.
// @Tags Incidents
// @Produce json
// @Param id query string false "Incident ID"
// @Success 200 {object} views.IncidentDetail
// @Failure 404 {object} views.IncidentDetail "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /detail [get]
func (h *Handler) getDetail(c *gin.Context) {
	log := h.logger.WithField("method", "getDetail").WithField("id", c.Query("id"))

	page := views.NewBoard(views.DetailRegions()...)
	if err := views.NewDetailRenderer(page, c.Query("id")).Render(c.Request.Context(), h.reader); err != nil {
		log.WithError(err).Error("Failed to render detail page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	model, _ := page.Get(views.RegionDetail)
	detail, _ := model.(views.IncidentDetail)
	if !detail.Found {
		c.JSON(http.StatusNotFound, detail)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Trigger a simulated incident
// @Description Generate one synthetic incident immediately, bypassing the probability gate
// @Tags Simulation
// @Produce json
// @Success 201 {object} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulation/trigger [post]
func (h *Handler) triggerIncident(c *gin.Context) {
	log := h.logger.WithField("method", "triggerIncident")

	incident, err := h.incidentService.TriggerIncident(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to trigger incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get active notifications
// @Description Get notifications that have not expired yet, oldest first
// @Tags Dashboard
// @Produce json
// @Success 200 {array} NotificationResponse
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, notificationResponses(h.notifications.Active()))
}

// @Summary Reset state
// @Description Drop persisted state and reinstall the default incidents, resources and volunteers
// @Tags System
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /system/reset [post]
func (h *Handler) resetState(c *gin.Context) {
	log := h.logger.WithField("method", "resetState")

	if err := h.incidentService.ResetState(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to reset state in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset state"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.cfg.StorageBackend})
}
