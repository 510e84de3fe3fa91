package events

import (
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// Handler subscribes the caller to the shared notifications stream.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	streamID  string
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	streamID string,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if streamID == "" {
		panic(e.NewNilArgumentError("streamID"))
	}
	return &Handler{log: log, sseServer: sseServer, streamID: streamID}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	query.Set("stream", h.streamID)
	r.URL.RawQuery = query.Encode()

	go func() {
		// Received browser disconnection. The stream is shared, so it stays.
		<-r.Context().Done()
		h.log.Info(r.Context(), "Unsubscribed from notifications.", logging.Entry("remoteAddr", r.RemoteAddr))
	}()

	h.log.Info(
		r.Context(),
		"Subscribed to notifications.",
		logging.Entry("remoteAddr", r.RemoteAddr),
		logging.Entry("streamID", h.streamID),
	)
	h.sseServer.ServeHTTP(rw, r)
}
