package app

import (
	"fmt"
	"georemind/internal/app/deps"
	"georemind/internal/app/services"
	listhistory "georemind/internal/http/handlers/history/list_history"
	notificationevents "georemind/internal/http/handlers/notifications/events"
	"georemind/internal/http/handlers/regions/location"
	regionevents "georemind/internal/http/handlers/regions/region_events"
	addreminder "georemind/internal/http/handlers/reminders/add_reminder"
	listreminders "georemind/internal/http/handlers/reminders/list_reminders"
	removereminder "georemind/internal/http/handlers/reminders/remove_reminder"
	"georemind/internal/implementations/notifier"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodPost, "/", addreminder.New(s.AddReminder))
	reminderRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	reminderRouter.Method(http.MethodDelete, "/{reminderID}", removereminder.New(s.RemoveReminder))

	historyRouter := chi.NewRouter()
	historyRouter.Method(http.MethodGet, "/", listhistory.New(s.ListHistory))

	regionRouter := chi.NewRouter()
	regionRouter.Method(http.MethodPost, "/events", regionevents.New(s.ProcessActivation))
	if deps.Simulator != nil {
		regionRouter.Method(http.MethodPost, "/location", location.New(deps.Simulator))
	}

	notificationRouter := chi.NewRouter()
	notificationRouter.Method(
		http.MethodGet,
		"/events",
		notificationevents.New(deps.Logger, deps.SseServer, notifier.StreamID),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	if deps.Config.SentryDsn != nil {
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	router.Mount("/reminders", reminderRouter)
	router.Mount("/history", historyRouter)
	router.Mount("/regions", regionRouter)
	router.Mount("/notifications", notificationRouter)
	router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
