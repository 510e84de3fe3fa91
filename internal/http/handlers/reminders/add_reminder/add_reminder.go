package addreminder

import (
	"encoding/json"
	"errors"
	e "georemind/internal/core/domain/errors"
	ratelimiter "georemind/internal/core/domain/rate_limiter"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/services"
	service "georemind/internal/core/services/add_reminder"
	"georemind/internal/http/handlers/response"
	"io"
	"net"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

const registrationWarning = "reminder saved but region monitoring could not be updated"

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    *float64 `json:"radius"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
	Warning  string            `json:"warning,omitempty"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.Latitude, validation.NotNil),
		validation.Field(&i.Longitude, validation.NotNil),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	radius := reminder.DefaultRadius
	if input.Radius != nil {
		radius = *input.Radius
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Name:      input.Name,
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
			Radius:    radius,
			Client:    clientOf(r),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, region.ErrRegistration):
			// The reminder is stored and will be registered on the next
			// successful registration.
			rem := response.Reminder{}
			rem.FromDomainType(result.Reminder)
			response.Render(rw, Result{Reminder: rem, Warning: registrationWarning}, http.StatusCreated)
		case errors.Is(err, reminder.ErrValidation):
			response.RenderUnprocessable(rw, err)
		case errors.Is(err, reminder.ErrReminderAlreadyExists):
			response.RenderConflict(rw, err)
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}

func clientOf(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
