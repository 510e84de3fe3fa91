package response

import (
	"georemind/internal/core/domain/activation"
	"time"

	"github.com/golang-module/carbon/v2"
)

type ActivationEntry struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Radius         float64   `json:"radius"`
	ActivationDate time.Time `json:"activation_date"`
	// ActivationDay is the UTC calendar day of the activation, handy for
	// grouping history in clients.
	ActivationDay string `json:"activation_day"`
}

func (a *ActivationEntry) FromDomainType(entry activation.Entry) {
	a.ID = string(entry.ID)
	a.Name = entry.Name
	a.Latitude = entry.Latitude
	a.Longitude = entry.Longitude
	a.Radius = entry.Radius
	a.ActivationDate = entry.ActivationDate
	a.ActivationDay = carbon.Time2Carbon(entry.ActivationDate).SetTimezone(carbon.UTC).ToDateString()
}

func ActivationEntries(entries []activation.Entry) []ActivationEntry {
	result := make([]ActivationEntry, len(entries))
	for ix, entry := range entries {
		result[ix].FromDomainType(entry)
	}
	return result
}
