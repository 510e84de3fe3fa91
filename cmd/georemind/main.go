package main

import (
	"context"
	"errors"
	"georemind/internal/app"
	"georemind/internal/app/consumers"
	"georemind/internal/app/deps"
	"georemind/internal/app/services"
	dl "georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/region"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	if err := services.Engine.Start(context.Background()); err != nil {
		if !errors.Is(err, region.ErrRegistration) {
			deps.Logger.Error(context.Background(), "Could not start engine.", dl.Entry("err", err))
			panic(err)
		}
		// Stored reminders are re-submitted with the next add or remove.
		deps.Logger.Warning(context.Background(), "Regions are not registered.", dl.Entry("err", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	engineDone := make(chan struct{})
	go func() {
		defer close(engineDone)
		err := services.Engine.Run(ctx, deps.Monitor.Events())
		deps.Logger.Info(context.Background(), "Engine has stopped.", dl.Entry("err", err))
	}()

	shutdownConsumers := consumers.InitConsumers(deps, services)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdownConsumers()
	cancel()
	<-engineDone
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("storage", deps.Config.StorageBackend),
		dl.Entry("monitor", deps.Config.Monitor),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
