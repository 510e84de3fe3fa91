package regionevents

import (
	"encoding/json"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/services"
	service "georemind/internal/core/services/process_activation"
	"georemind/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Handler accepts region transitions pushed by monitors that report over
// HTTP instead of MQTT or AMQP.
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
	Identifier string  `json:"identifier"`
	Type       string  `json:"type"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Radius     float64 `json:"radius"`
}

type Result struct {
	Decision string `json:"decision"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Identifier, validation.Required),
		validation.Field(&i.Type, validation.Required),
	)
}

// Event converts the payload to a domain event. Unrecognized types are
// forwarded as region.EventTypeUnknown and ignored downstream.
func (i Input) Event() region.Event {
	eventType, _ := region.ParseEventType(i.Type)
	return region.Event{
		Identifier: i.Identifier,
		Type:       eventType,
		Latitude:   i.Latitude,
		Longitude:  i.Longitude,
		Radius:     i.Radius,
	}
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

	result, err := h.service.Run(r.Context(), service.Input{Event: input.Event()})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Decision: result.Outcome.Decision.String()}, http.StatusOK)
}
