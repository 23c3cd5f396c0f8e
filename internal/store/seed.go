package store

import "github.com/shenikar/crisis_relief_coordinator/internal/models"

// DefaultIncidents - стартовые инциденты, если сохраненного состояния нет
func DefaultIncidents() []models.Incident {
	return []models.Incident{
		{
			ID:       17192834,
			Coords:   models.Coordinates{Lat: 40.7128, Lon: -74.0060},
			Type:     models.IncidentFire,
			Severity: models.SeverityHigh,
			Time:     "2 mins ago",
			Reporter: models.Reporter{
				Name:    "John Doe",
				Avatar:  "https://ui-avatars.com/api/?name=John+Doe&background=random",
				Contact: "+1 555-0101",
				Role:    models.RoleCivilian,
				Trust:   85,
			},
			Description: "Large structural fire at the old warehouse. Smoke visible from 5 blocks away.",
		},
		{
			ID:       17192835,
			Coords:   models.Coordinates{Lat: 40.7200, Lon: -74.0100},
			Type:     models.IncidentMedical,
			Severity: models.SeverityMedium,
			Time:     "15 mins ago",
			Reporter: models.Reporter{
				Name:    "Alice Smith",
				Avatar:  "https://ui-avatars.com/api/?name=Alice+Smith&background=random",
				Contact: "+1 555-0102",
				Role:    models.RoleMedic,
				Trust:   98,
			},
			Description: "Multiple injuries reported following a vehicle collision. Two passengers require immediate extraction.",
		},
	}
}

func DefaultResources() []models.Resource {
	return []models.Resource{
		{ID: 1, Name: "Bottled Water", Category: "Hydration", Quantity: 2400, Unit: "Liters", Status: models.ResourceAdequate},
		{ID: 2, Name: "MRE Packs", Category: "Food", Quantity: 150, Unit: "Box", Status: models.ResourceLow},
		{ID: 3, Name: "First Aid Kits", Category: "Medical", Quantity: 500, Unit: "Kits", Status: models.ResourceSurplus},
		{ID: 4, Name: "Blankets", Category: "Shelter", Quantity: 800, Unit: "Pcs", Status: models.ResourceAdequate},
		{ID: 5, Name: "Generators", Category: "Power", Quantity: 5, Unit: "Units", Status: models.ResourceCritical},
		{ID: 6, Name: "Flashlights", Category: "Equipment", Quantity: 200, Unit: "Pcs", Status: models.ResourceAdequate},
	}
}

func DefaultVolunteers() []models.Volunteer {
	return []models.Volunteer{
		{ID: 1, Name: "Sarah Jenkins", Role: "Paramedic", Status: models.VolunteerBusy, Location: "Sector 4", Avatar: "https://ui-avatars.com/api/?name=Sarah+Jenkins&background=random"},
		{ID: 2, Name: "Mike Ross", Role: "Logistics", Status: models.VolunteerOnline, Location: "Base Alpha", Avatar: "https://ui-avatars.com/api/?name=Mike+Ross&background=random"},
		{ID: 3, Name: "David Kim", Role: "Search & Rescue", Status: models.VolunteerOffline, Location: "-", Avatar: "https://ui-avatars.com/api/?name=David+Kim&background=random"},
		{ID: 4, Name: "Elena Rodriguez", Role: "Medical", Status: models.VolunteerOnline, Location: "Mobile Unit 2", Avatar: "https://ui-avatars.com/api/?name=Elena+Rodriguez&background=random"},
		{ID: 5, Name: "Tom Hardy", Role: "Driver", Status: models.VolunteerBusy, Location: "Route 9", Avatar: "https://ui-avatars.com/api/?name=Tom+Hardy&background=random"},
	}
}
