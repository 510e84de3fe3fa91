package location

import (
	"context"
	"encoding/json"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Simulator moves a simulated device. Boundary crossings are reported as
// region events by the simulator itself.
type Simulator interface {
	UpdateLocation(ctx context.Context, latitude, longitude float64) error
}

type Handler struct {
	simulator Simulator
}

func New(simulator Simulator) *Handler {
	if simulator == nil {
		panic(e.NewNilArgumentError("simulator"))
	}
	return &Handler{simulator: simulator}
}

type Input struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Result struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Latitude, validation.NotNil, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&i.Longitude, validation.NotNil, validation.Min(-180.0), validation.Max(180.0)),
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

	if err := h.simulator.UpdateLocation(r.Context(), *input.Latitude, *input.Longitude); err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Latitude: *input.Latitude, Longitude: *input.Longitude}, http.StatusOK)
}
