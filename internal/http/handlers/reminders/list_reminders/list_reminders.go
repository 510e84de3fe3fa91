package listreminders

import (
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/services"
	service "georemind/internal/core/services/list_reminders"
	"georemind/internal/http/handlers/response"
	"net/http"
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
	Reminders  []response.Reminder `json:"reminders"`
	TotalCount int                 `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Reminders: response.Reminders(result.Reminders), TotalCount: len(result.Reminders)},
		http.StatusOK,
	)
}
