package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/sanjanb/k-tech-nain/internal/config"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/deal"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/notification"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/product"
	"github.com/sanjanb/k-tech-nain/internal/infrastructure/mailer"
	"github.com/sanjanb/k-tech-nain/internal/infrastructure/notifier"
	"github.com/sanjanb/k-tech-nain/internal/infrastructure/persistence"
	"github.com/sanjanb/k-tech-nain/internal/server"
	"github.com/sanjanb/k-tech-nain/internal/transport/tasks"
	"github.com/sanjanb/k-tech-nain/pkg/application/connectors"
	"github.com/sanjanb/k-tech-nain/pkg/application/modules"
	"github.com/sanjanb/k-tech-nain/pkg/logx"
	"github.com/sanjanb/k-tech-nain/pkg/middlewarex"
)

const logFieldMaxLen = 2048

func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	pg := &connectors.Postgres{ //nolint:exhaustruct
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}

	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db.Ping: %w", err)
	}

	rd := &connectors.Redis{ //nolint:exhaustruct
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}

	// Connecting eagerly: the task queue is not optional, a dead broker
	// should fail startup, not the first confirmation.
	rd.Client(ctx)
	defer rd.Close(ctx)

	dealRepo := persistence.NewDealRepository(db)
	productRepo := persistence.NewProductRepository(db)
	userRepo := persistence.NewUserRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{ //nolint:exhaustruct
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	})
	defer asynqClient.Close()

	queueService := notification.NewQueueService(notificationRepo, tasks.NewProducer(asynqClient))
	dealService := deal.NewService(dealRepo, productRepo, queueService)
	productService := product.NewService(productRepo)

	smtpMailer := mailer.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	dispatcher := notification.NewDispatcher(notificationRepo, dealRepo, productRepo, userRepo, smtpMailer).
		WithDeliveryTimeout(cfg.SMTP.DeliveryTimeout)

	if cfg.Bot.Token != "" {
		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		dispatcher = dispatcher.WithFailureAlerter(alertBot)
	}

	httpServer := newHTTPServer(cfg, server.NewServer(
		server.NewProductServer(productService),
		server.NewDealServer(dealService),
		server.NewNotificationServer(queueService, dealService),
		server.NewUserServer(userRepo),
	))

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(ctx, g,
		modules.AsynqQueues{tasks.QueueNotifications: 1},
		modules.AsynqHandler{
			Pattern: tasks.TypeNotificationDeliver,
			Handle:  tasks.NewHandler(dispatcher).HandleDeliver,
		},
	)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newHTTPServer(cfg config.Config, s server.Server) *http.Server {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.UserID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return &http.Server{ //nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}
}
