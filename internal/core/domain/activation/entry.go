package activation

import (
	"georemind/internal/core/domain/reminder"
	"time"
)

// Entry is an immutable record of a reminder firing. ID is the id of the
// reminder that fired, so two activations of one reminder differ only by
// ActivationDate.
type Entry struct {
	ID             reminder.ID
	Name           string
	Latitude       float64
	Longitude      float64
	Radius         float64
	ActivationDate time.Time
}

func NewEntry(rem reminder.Reminder, activationDate time.Time) Entry {
	return Entry{
		ID:             rem.ID,
		Name:           rem.Name,
		Latitude:       rem.Latitude,
		Longitude:      rem.Longitude,
		Radius:         rem.Radius,
		ActivationDate: activationDate,
	}
}
