package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eventPlanner/internal/config"
	"eventPlanner/internal/http-server/handlers/comment/createComment"
	"eventPlanner/internal/http-server/handlers/comment/deleteComment"
	"eventPlanner/internal/http-server/handlers/comment/getComment"
	"eventPlanner/internal/http-server/handlers/comment/listComments"
	"eventPlanner/internal/http-server/handlers/comment/updateComment"
	"eventPlanner/internal/http-server/handlers/event/eventComments"
	"eventPlanner/internal/http-server/handlers/event/eventParticipants"
	"eventPlanner/internal/http-server/handlers/invitation/confirmInvitation"
	"eventPlanner/internal/http-server/handlers/invitation/createInvitation"
	"eventPlanner/internal/http-server/handlers/invitation/deleteInvitation"
	"eventPlanner/internal/http-server/handlers/invitation/getInvitation"
	"eventPlanner/internal/http-server/handlers/invitation/listInvitations"
	"eventPlanner/internal/http-server/handlers/invitation/updateInvitation"
	"eventPlanner/internal/http-server/handlers/place/createPlace"
	"eventPlanner/internal/http-server/handlers/place/deletePlace"
	"eventPlanner/internal/http-server/handlers/place/getPlace"
	"eventPlanner/internal/http-server/handlers/place/listPlaces"
	"eventPlanner/internal/http-server/handlers/place/updatePlace"
	"eventPlanner/internal/http-server/handlers/user/userInvitations"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/http-server/middleware/mwlogger"
	"eventPlanner/internal/lib/api/query"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/handlers/slogpretty"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event planner", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	clk := clock.Real{}
	parser := query.Parser{
		DefaultItemsPerPage: cfg.Pagination.DefaultItemsPerPage,
		MaxItemsPerPage:     cfg.Pagination.MaxItemsPerPage,
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(auth.New(log, []byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer))

	router.Route("/invitations", func(r chi.Router) {
		r.Get("/", listInvitations.New(log, clk, parser, storage))
		r.Post("/", createInvitation.New(log, clk, storage))
		r.Get("/{id}", getInvitation.New(log, clk, storage))
		r.Put("/{id}", updateInvitation.New(log, clk, storage))
		r.Put("/{id}/confirm", confirmInvitation.New(log, clk, storage))
		r.Delete("/{id}", deleteInvitation.New(log, clk, storage))
	})

	router.Route("/comments", func(r chi.Router) {
		r.Get("/", listComments.New(log, parser, storage))
		r.Post("/", createComment.New(log, clk, storage))
		r.Get("/{id}", getComment.New(log, storage))
		r.Put("/{id}", updateComment.New(log, clk, storage))
		r.Delete("/{id}", deleteComment.New(log, clk, storage))
	})

	router.Route("/places", func(r chi.Router) {
		r.Get("/", listPlaces.New(log, parser, storage))
		r.Post("/", createPlace.New(log, clk, storage))
		r.Get("/{id}", getPlace.New(log, storage))
		r.Put("/{id}", updatePlace.New(log, clk, storage))
		r.Delete("/{id}", deletePlace.New(log, clk, storage))
	})

	router.Get("/events/{id}/participants", eventParticipants.New(log, clk, parser, storage))
	router.Get("/events/{id}/comments", eventComments.New(log, parser, storage))
	router.Get("/users/{id}/invitations", userInvitations.New(log, clk, parser, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
