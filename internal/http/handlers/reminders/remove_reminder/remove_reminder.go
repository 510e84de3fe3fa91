package removereminder

import (
	"errors"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/services"
	service "georemind/internal/core/services/remove_reminder"
	"georemind/internal/http/handlers/response"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

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

type Result struct {
	Reminder response.Reminder `json:"reminder"`
	Warning  string            `json:"warning,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	reminderID := chi.URLParam(r, "reminderID")
	if r.URL.RawPath != "" {
		// chi routes on the escaped path when it differs from the decoded one.
		unescaped, err := url.PathUnescape(reminderID)
		if err != nil {
			response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
			return
		}
		reminderID = unescaped
	}
	if reminderID == "" {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{ID: reminder.ID(reminderID)})
	if err != nil {
		switch {
		case errors.Is(err, region.ErrRegistration):
			rem := response.Reminder{}
			rem.FromDomainType(result.Reminder)
			response.Render(
				rw,
				Result{Reminder: rem, Warning: "reminder removed but region monitoring could not be updated"},
				http.StatusOK,
			)
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			response.RenderNotFound(rw, err)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusOK)
}
