package models

import (
	"encoding/json"
	"fmt"
)

type IncidentType string

const (
	IncidentFire          IncidentType = "Fire"
	IncidentMedical       IncidentType = "Medical"
	IncidentFlood         IncidentType = "Flood"
	IncidentStructureFail IncidentType = "Structure Fail"
)

// IncidentTypes - фиксированный набор типов, из которого выбирает симуляция
var IncidentTypes = []IncidentType{IncidentFire, IncidentMedical, IncidentFlood, IncidentStructureFail}

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

type ReporterRole string

const (
	RoleCivilian      ReporterRole = "Civilian"
	RolePoliceOfficer ReporterRole = "Police Officer"
	RoleGridWorker    ReporterRole = "Grid Worker"
	RoleMedic         ReporterRole = "Medic"
)

// ReporterRoles - роли, доступные генератору инцидентов
var ReporterRoles = []ReporterRole{RoleCivilian, RolePoliceOfficer, RoleGridWorker, RoleMedic}

// Coordinates - пара (широта, долгота). В JSON хранится как массив [lat, lon].
type Coordinates struct {
	Lat float64 `validate:"latitude"`
	Lon float64 `validate:"longitude"`
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lon})
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coords: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coords: expected [lat, lon], got %d values", len(pair))
	}
	c.Lat, c.Lon = pair[0], pair[1]
	return nil
}

// Reporter - автор сообщения об инциденте, встроен в Incident
type Reporter struct {
	Name    string       `json:"name" validate:"required"`
	Avatar  string       `json:"avatar"`
	Contact string       `json:"contact"`
	Role    ReporterRole `json:"role"`
	Trust   int          `json:"trust" validate:"gte=0,lte=100"`
}

type Incident struct {
	ID          int64        `json:"id" validate:"required"`
	Coords      Coordinates  `json:"coords"`
	Type        IncidentType `json:"type" validate:"required"`
	Severity    Severity     `json:"severity" validate:"required,oneof=high medium low"`
	Time        string       `json:"time"`
	Reporter    Reporter     `json:"reporter"`
	Description string       `json:"description"`
}
