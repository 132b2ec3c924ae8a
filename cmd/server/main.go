package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventlisting/config"
	_ "eventlisting/docs"
	"eventlisting/internal/adapters/auth"
	"eventlisting/internal/adapters/email"
	"eventlisting/internal/adapters/stats"
	httpDelivery "eventlisting/internal/delivery/http"
	"eventlisting/internal/delivery/http/controllers"
	"eventlisting/internal/domain"
	"eventlisting/internal/metrics"
	"eventlisting/internal/repository/postgres"
	"eventlisting/internal/services"

	_ "github.com/lib/pq"
)

// @title Event Listing API
// @version 1.0
// @description Public event search and owner-scoped event management with view statistics.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token whose subject is the user id in the path
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	if cfg.RunMigrations {
		if err := postgres.Migrate(context.Background(), db, logger); err != nil {
			logger.Error("run migrations", "err", err)
			os.Exit(1)
		}
	}

	m := metrics.New()

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	participationRepo := postgres.NewParticipationRepository(db)
	stores := services.EventStores{
		Events:         eventRepo,
		Users:          postgres.NewUserRepository(db),
		Categories:     postgres.NewCategoryRepository(db),
		Locations:      postgres.NewLocationRepository(db),
		Participations: participationRepo,
	}

	// Adapters
	statsClient := stats.NewClient(stats.Config{BaseURL: cfg.StatsServerURL, Timeout: cfg.StatsTimeout}, m)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		logger.Error("parse email templates", "err", err)
		os.Exit(1)
	}

	// Services
	gateway := services.NewStatisticsGateway(statsClient, eventRepo, cfg.StatsAppName, logger)
	notifier := services.NewEventNotifier(mailer, renderer, m, logger)
	privateSvc := services.NewPrivateEventService(postgres.NewTransactor(db), stores, gateway, notifier, logger, cfg.ServiceTimeout)
	publicSvc := services.NewPublicEventService(eventRepo, participationRepo, gateway, logger, cfg.ServiceTimeout)
	commentSvc := services.NewCommentService(eventRepo, postgres.NewCommentRepository(db), cfg.ServiceTimeout)

	var verifier domain.TokenVerifier
	if cfg.JWTSecret != "" {
		verifier = auth.NewJWT(cfg.JWTSecret)
	} else {
		logger.Warn("JWT_SECRET is empty, owner routes are not authenticated")
	}

	router := httpDelivery.NewRouter(httpDelivery.RouterConfig{
		Logger:         logger,
		Metrics:        m,
		Verifier:       verifier,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Public:         controllers.NewPublicEventController(logger, publicSvc, commentSvc),
		Private:        controllers.NewPrivateEventController(logger, privateSvc),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}
	logger.Info("server stopped")
}
