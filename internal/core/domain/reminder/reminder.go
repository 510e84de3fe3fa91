package reminder

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	MinRadius     = 1.0
	MaxRadius     = 100_000.0
	DefaultRadius = 100.0
	MaxNameLength = 256
)

type ID string

type Reminder struct {
	ID        ID
	Name      string
	Latitude  float64
	Longitude float64
	Radius    float64
}

// NewID derives the reminder identity from its name and center. The radius is
// not part of the identity.
func NewID(name string, latitude float64, longitude float64) ID {
	return ID(fmt.Sprintf("%s-%s-%s", name, formatCoordinate(latitude), formatCoordinate(longitude)))
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (r Reminder) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: id must not be empty", ErrValidation)
	}
	return CreateInput{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Radius:    r.Radius,
	}.Validate()
}

type CreateInput struct {
	Name      string
	Latitude  float64
	Longitude float64
	Radius    float64
}

func (i CreateInput) Validate() error {
	err := validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.By(notBlank), validation.Length(1, MaxNameLength)),
		validation.Field(&i.Latitude, validation.By(finite), validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&i.Longitude, validation.By(finite), validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&i.Radius, validation.Required, validation.By(finite), validation.Min(MinRadius), validation.Max(MaxRadius)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// Reminder builds the reminder described by the input. The input is expected to be valid.
func (i CreateInput) Reminder() Reminder {
	name := strings.TrimSpace(i.Name)
	return Reminder{
		ID:        NewID(name, i.Latitude, i.Longitude),
		Name:      name,
		Latitude:  i.Latitude,
		Longitude: i.Longitude,
		Radius:    i.Radius,
	}
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

func finite(value interface{}) error {
	f, _ := value.(float64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("must be a finite number")
	}
	return nil
}
