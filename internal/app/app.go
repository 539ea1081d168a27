package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/BatlZlat/gornostyle-sub004/internal/cache"
	"github.com/BatlZlat/gornostyle-sub004/internal/config"
	"github.com/BatlZlat/gornostyle-sub004/internal/handler"
	"github.com/BatlZlat/gornostyle-sub004/internal/middleware"
	"github.com/BatlZlat/gornostyle-sub004/internal/notification"
	"github.com/BatlZlat/gornostyle-sub004/internal/payment"
	"github.com/BatlZlat/gornostyle-sub004/internal/payment/stripe"
	"github.com/BatlZlat/gornostyle-sub004/internal/payment/tokenbank"
	"github.com/BatlZlat/gornostyle-sub004/internal/repository"
	"github.com/BatlZlat/gornostyle-sub004/internal/router"
	"github.com/BatlZlat/gornostyle-sub004/internal/scheduler"
	"github.com/BatlZlat/gornostyle-sub004/internal/service"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	rdb        *redis.Client
	events     *notification.EventPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Gornostyle",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initProviders() (*payment.Registry, error) {
	tb := a.cfg.Payment.TokenBank
	bank, err := tokenbank.New(tokenbank.Config{
		PublicKeyPEM: tb.PublicKeyPEM,
		InitURL:      tb.InitURL,
		APIToken:     tb.APIToken,
		MerchantID:   tb.MerchantID,
		SuccessURL:   tb.SuccessURL,
		FailURL:      tb.FailURL,
		Timeout:      tb.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("tokenbank provider: %w", err)
	}
	if tb.PublicKeyPEM == "" {
		a.log.Warn("tokenbank public key is empty, webhook signatures are not verified")
	}

	sc := a.cfg.Payment.Stripe
	card := stripe.New(stripe.Config{
		SecretKey:     sc.SecretKey,
		WebhookSecret: sc.WebhookSecret,
		SuccessURL:    sc.SuccessURL,
		CancelURL:     sc.CancelURL,
		Currency:      sc.Currency,
	})

	return payment.NewRegistry(a.cfg.Payment.DefaultProvider, bank, card)
}

func (a *App) initServices() error {
	ctx := context.Background()

	repos := service.Repos{
		Clients:      repository.NewClientRepo(a.db),
		Slots:        repository.NewSlotRepo(a.db),
		Groups:       repository.NewGroupRepo(a.db),
		Transactions: repository.NewTransactionRepo(a.db),
		Bookings:     repository.NewBookingRepo(a.db),
		Wallets:      repository.NewWalletRepo(a.db),
		Referrals:    repository.NewReferralRepo(a.db),
		Audit:        repository.NewAuditRepo(a.db),
	}
	txm := repository.NewTxManager(a.db)

	providers, err := a.initProviders()
	if err != nil {
		return err
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	a.events, err = notification.NewEventPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init event publisher: %w", err)
	}
	notifier := notification.Multi{tg, a.events}

	a.rdb, err = cache.NewRedisClient(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	groupCache := cache.NewGroupCache(a.rdb, a.cfg.Redis.GroupTTL, a.log)

	referrerBonus, refereeBonus, err := a.cfg.Referral.Bonuses()
	if err != nil {
		return fmt.Errorf("referral config: %w", err)
	}

	finalizer := service.NewFinalizer(repos)
	referralService := service.NewReferralService(txm, repos, notifier,
		service.ReferralBonuses{Referrer: referrerBonus, Referee: refereeBonus}, a.log)
	holdService := service.NewHoldService(txm, repos, providers, finalizer, groupCache, notifier,
		a.cfg.Booking.HoldTTL, a.log)
	webhookService := service.NewWebhookService(txm, repos, providers, finalizer, groupCache, notifier,
		referralService, a.log)
	reconciliationService := service.NewReconciliationService(txm, repos, finalizer, groupCache, notifier, a.log)
	clientService := service.NewClientService(txm, repos, referralService, a.log)
	scheduleService := service.NewScheduleService(repos, groupCache, a.log)

	a.scheduler = scheduler.New(
		holdService,
		referralService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Holds:          holdService,
		Webhooks:       webhookService,
		Clients:        clientService,
		Schedule:       scheduleService,
		Reconciliation: reconciliationService,
		Referrals:      referralService,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.events.Close(); err != nil {
		a.log.Warn("failed to close rabbitmq connection", logger.String("error", err.Error()))
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn("failed to close redis client", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
