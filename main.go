package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	account "auction-marketplace/internal/accountService"
	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/effects"
	"auction-marketplace/internal/locking"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/scheduler"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}
	if !utils.SetLevel(cfg.LogLevel) {
		utils.Warn("Unknown log level, keeping default", map[string]any{"log_level": cfg.LogLevel})
	}
	utils.Info("Configuration loaded", map[string]any{"config": fmt.Sprintf("%+v", cfg.Redacted())})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		utils.Fatal("Server stopped with error", map[string]any{"error": err.Error()})
	}
	utils.Info("Server stopped", nil)
}

// configPath returns the TOML file to load, from env or "config.toml".
func configPath() string {
	if p := os.Getenv("AUCTION_CONFIG"); p != "" {
		return p
	}
	return "config.toml"
}

func run(ctx context.Context, cfg *config.Config) error {
	repo, closeRepo, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	locker, closeLocker, err := openLocker(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLocker()

	mailer, publisher, closeNATS, err := openMessaging(cfg)
	if err != nil {
		return err
	}
	defer closeNATS()

	outbox := effects.NewOutbox(effects.NewDispatcher(repo, mailer, publisher), cfg.Outbox.Buffer)

	sweepFee, err := bidding.ParseFeePolicy(cfg.Settlement.SweepFeePolicy)
	if err != nil {
		return err
	}
	biddingSvc := bidding.NewBiddingService(repo,
		bidding.WithLocker(locker),
		bidding.WithEmitter(outbox),
		bidding.WithSweepFeePolicy(sweepFee),
		bidding.WithAdminUserID(cfg.Settlement.AdminUserID),
		bidding.WithEndingSoonWindow(cfg.Settlement.EndingSoonWindow.Duration),
		bidding.WithReserveEnforcement(cfg.Settlement.EnforceReserve),
	)
	accountSvc := account.NewAccountService(repo, account.WithEmitter(outbox))

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.SetupRouter(server.RouterConfig{
		Bidding:  biddingSvc,
		Accounts: accountSvc,
		Users:    repo,
		CronKey:  cfg.Server.CronKey,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return outbox.Run(gctx)
	})

	if cfg.Scheduler.Enabled {
		runner := scheduler.NewRunner(biddingSvc, cfg.Scheduler.SweepInterval.Duration, cfg.Scheduler.EndingSoonInterval.Duration)
		g.Go(func() error {
			return runner.Run(gctx)
		})
	}

	g.Go(func() error {
		utils.Info("Starting auction server", map[string]any{
			"addr":    cfg.Server.Addr,
			"storage": cfg.Storage.Driver,
			"redis":   cfg.Redis.Enabled,
			"nats":    cfg.NATS.Enabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
		defer cancel()
		utils.Info("Shutting down HTTP server", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config) (repository.AuctionDB, func(), error) {
	if cfg.Storage.Driver != "postgres" {
		repo := repository.NewMemoryRepo()
		if cfg.Server.SeedDemoData {
			if err := seedDemoData(ctx, repo, time.Now().UTC()); err != nil {
				return nil, nil, fmt.Errorf("seed demo data: %w", err)
			}
		}
		return repo, func() {}, nil
	}

	pgCfg := cfg.Postgres
	pool, err := repository.NewPostgresPool(ctx, repository.PostgresConfig{
		DSN:      pgCfg.DSN,
		Host:     pgCfg.Host,
		Port:     pgCfg.Port,
		Database: pgCfg.Database,
		User:     pgCfg.User,
		Password: pgCfg.Password,
		SSLMode:  pgCfg.SSLMode,
		MaxConns: pgCfg.MaxConns,
		MinConns: pgCfg.MinConns,
	})
	if err != nil {
		return nil, nil, err
	}
	if pgCfg.RunMigrations {
		if err := repository.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		utils.Info("Postgres migrations applied", nil)
	}
	return repository.NewPostgresRepo(pool), pool.Close, nil
}

func openLocker(ctx context.Context, cfg *config.Config) (locking.Locker, func(), error) {
	if !cfg.Redis.Enabled {
		return locking.NewKeyedMutex(), func() {}, nil
	}

	rdb, err := locking.NewRedisClient(ctx, locking.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			utils.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
	return locking.NewRedisLocker(rdb, cfg.Redis.LockTTL.Duration, cfg.Redis.LockWait.Duration), closeFn, nil
}

// openMessaging returns the mailer and optional event publisher. Without
// NATS, email is only logged and no events are published.
func openMessaging(cfg *config.Config) (effects.Mailer, effects.Publisher, func(), error) {
	if !cfg.NATS.Enabled {
		return effects.LogMailer{}, nil, func() {}, nil
	}

	conn, err := effects.ConnectNATS(cfg.NATS.URL)
	if err != nil {
		return nil, nil, nil, err
	}
	publisher := effects.NewNATSPublisher(conn, cfg.NATS.SubjectPrefix)
	closeFn := func() {
		if err := conn.Drain(); err != nil {
			utils.Warn("Failed to drain nats connection", map[string]any{"error": err.Error()})
		}
	}
	return effects.NewNATSMailer(publisher), publisher, closeFn, nil
}

// seedDemoData adds sample users and two live verified products to the
// in-memory store.
func seedDemoData(ctx context.Context, repo *repository.MemoryRepo, now time.Time) error {
	users := []model.User{
		{UserID: "admin", Username: "admin", Email: "admin@example.com", Role: model.RoleAdmin},
		{UserID: "seller1", Username: "seller1", Email: "seller1@example.com", Role: model.RoleSeller},
		{UserID: "buyer1", Username: "buyer1", Email: "buyer1@example.com", Role: model.RoleBuyer, Balance: decimal.NewFromInt(1000)},
		{UserID: "buyer2", Username: "buyer2", Email: "buyer2@example.com", Role: model.RoleBuyer, Balance: decimal.NewFromInt(1000)},
	}
	for _, u := range users {
		repo.AddUser(u)
	}

	products := []model.Product{
		{
			ProductID:      "product1",
			SellerID:       "seller1",
			Title:          "Vintage camera",
			Description:    "Working 35mm rangefinder",
			Category:       "electronics",
			Condition:      model.ConditionUsed,
			StartingPrice:  decimal.NewFromInt(100),
			Currency:       "USD",
			BidIncrement:   decimal.NewFromInt(10),
			BuyNowPrice:    decimal.NewNullDecimal(decimal.NewFromInt(400)),
			StartDate:      now.Add(-time.Hour),
			EndDate:        now.Add(24 * time.Hour),
			Verified:       true,
			CommissionRate: decimal.NewFromInt(10),
		},
		{
			ProductID:      "product2",
			SellerID:       "seller1",
			Title:          "Oak desk",
			Category:       "furniture",
			Condition:      model.ConditionUsed,
			StartingPrice:  decimal.NewFromInt(50),
			Currency:       "USD",
			BidIncrement:   decimal.NewFromInt(5),
			StartDate:      now.Add(-time.Hour),
			EndDate:        now.Add(45 * time.Minute),
			Verified:       true,
			CommissionRate: decimal.NewFromInt(5),
		},
	}
	for _, p := range products {
		p.CreatedAt, p.UpdatedAt = now, now
		if err := repo.CreateProduct(ctx, p); err != nil {
			return err
		}
	}

	utils.Info("Demo data seeded", map[string]any{"users": len(users), "products": len(products)})
	return nil
}
