package models

type VolunteerStatus string

const (
	VolunteerOnline  VolunteerStatus = "Online"
	VolunteerBusy    VolunteerStatus = "Busy"
	VolunteerOffline VolunteerStatus = "Offline"
)

type Volunteer struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Status   VolunteerStatus `json:"status"`
	Location string          `json:"location"`
	Avatar   string          `json:"avatar"`
}
