package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"georemind/internal/core/domain/notification"
	"io"
	"net/http"
	"net/url"
	"time"
)

type telegramMessage struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// Telegram sends notifications to a chat through the Telegram Bot API.
type Telegram struct {
	httpClient http.Client
	baseURL    url.URL
	token      string
	chatID     int64
}

func NewTelegram(baseURL url.URL, token string, chatID int64, timeout time.Duration) *Telegram {
	return &Telegram{
		httpClient: http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
		chatID:     chatID,
	}
}

func (t *Telegram) Present(ctx context.Context, n notification.Notification) error {
	url := t.baseURL.JoinPath(fmt.Sprintf("bot%s", t.token), "sendMessage")
	var body bytes.Buffer
	err := json.NewEncoder(&body).Encode(telegramMessage{ChatID: t.chatID, Text: n.Title + "\n" + n.Body})
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), &body)
	if err != nil {
		return err
	}
	request.Header.Add("content-type", "application/json")
	resp, err := t.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("got unsuccessful response from Telegram: %s", string(body))
	}
	return nil
}
