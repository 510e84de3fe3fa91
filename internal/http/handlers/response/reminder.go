package response

import "georemind/internal/core/domain/reminder"

type Reminder struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = string(dr.ID)
	r.Name = dr.Name
	r.Latitude = dr.Latitude
	r.Longitude = dr.Longitude
	r.Radius = dr.Radius
}

func Reminders(drs []reminder.Reminder) []Reminder {
	reminders := make([]Reminder, len(drs))
	for ix, dr := range drs {
		reminders[ix].FromDomainType(dr)
	}
	return reminders
}
