package notifier

import (
	"context"
	"encoding/json"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/notification"

	"github.com/r3labs/sse/v2"
)

const StreamID = "notifications"

type sseMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SSE publishes notifications to subscribers of the notifications stream.
type SSE struct {
	server *sse.Server
}

func NewSSE(server *sse.Server) *SSE {
	if server == nil {
		panic(e.NewNilArgumentError("server"))
	}
	if !server.StreamExists(StreamID) {
		server.CreateStream(StreamID)
	}
	return &SSE{server: server}
}

func (s *SSE) Present(ctx context.Context, n notification.Notification) error {
	data, err := json.Marshal(sseMessage{Title: n.Title, Body: n.Body})
	if err != nil {
		return err
	}
	s.server.Publish(StreamID, &sse.Event{Event: []byte("notification"), Data: data})
	return nil
}
