package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "address-autocomplete/docs"
	"address-autocomplete/internal/config"
	"address-autocomplete/internal/form"
	"address-autocomplete/internal/handler"
	"address-autocomplete/internal/logging"
	"address-autocomplete/internal/repository"
	"address-autocomplete/internal/service"
	"address-autocomplete/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server config")
	}

	logging.Setup(os.Stdout, cfg.Env, cfg.LogLevel)
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	templates, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse templates")
	}

	// Submission target
	var (
		submitter         service.Submitter = service.NewLogSubmitter()
		submissionHandler *handler.SubmissionHandler
	)
	if cfg.SubmissionTarget == config.TargetPostgres {
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.CreateSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot create schema")
		}

		submitter = repo
		submissionHandler = handler.NewSubmissionHandler(service.NewSubmissionService(repo))
	}

	// Initialize layers
	store := form.NewStore(cfg.SessionTTL)
	go store.Run(ctx, time.Minute)

	formService := service.NewFormService(store, submitter)

	r := handler.NewRouter(handler.Routes{
		Page: handler.NewPageHandler(formService, handler.WidgetConfig{
			APIKey:  cfg.GoogleMapsAPIKey,
			Country: cfg.PlacesCountry,
			Types:   cfg.Types(),
		}),
		Form:        handler.NewFormHandler(formService),
		Submissions: submissionHandler,
		Templates:   templates,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("addr", cfg.ServerAddress).
		Str("submission_target", cfg.SubmissionTarget).
		Msg("starting address form server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
