package listhistory

import (
	c "georemind/internal/core/domain/common"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/services"
	service "georemind/internal/core/services/list_history"
	"georemind/internal/http/handlers/response"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-module/carbon/v2"
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
	Entries    []response.ActivationEntry `json:"entries"`
	TotalCount int                        `json:"total_count"`
}

// parseSince accepts any layout carbon understands, e.g. "2024-05-01" or
// "2024-05-01T10:30:00Z". Values without a zone are read as UTC.
func parseSince(values url.Values) (c.Optional[time.Time], bool) {
	raw := values.Get("since")
	if raw == "" {
		return c.Optional[time.Time]{}, true
	}
	since := carbon.Parse(raw, carbon.UTC)
	if since.Error != nil {
		return c.Optional[time.Time]{}, false
	}
	return c.NewOptional(since.Carbon2Time(), true), true
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	since, ok := parseSince(r.URL.Query())
	if !ok {
		response.RenderError(rw, "invalid since", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Since: since})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Entries: response.ActivationEntries(result.Entries), TotalCount: len(result.Entries)},
		http.StatusOK,
	)
}
