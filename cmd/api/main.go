package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inheritance-vault/config"
	"inheritance-vault/internal/adapter/bitcoin"
	httpHandler "inheritance-vault/internal/adapter/http/handler"
	"inheritance-vault/internal/adapter/keyderiv"
	"inheritance-vault/internal/adapter/ledger"
	"inheritance-vault/internal/adapter/storage/memory"
	pgStorage "inheritance-vault/internal/adapter/storage/postgres"
	redisStorage "inheritance-vault/internal/adapter/storage/redis"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/internal/service"
	"inheritance-vault/pkg/logger"

	"github.com/rs/zerolog"
)

type stores struct {
	wills       ports.WillRepository
	settlements ports.SettlementRepository
	audit       ports.AuditRepository
	health      ports.HealthChecker
	close       func()
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Str("network", cfg.Bitcoin.Network).
		Msg("Starting Inheritance Vault")

	ctx := context.Background()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open storage")
	}
	defer st.close()
	healthCheckers := []ports.HealthChecker{st.health}

	// Redis backs rate limiting only; without it limits are off.
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Collaborators
	seed := cfg.KeyDeriv.MasterSeed
	if seed == "" {
		seed, err = keyderiv.GenerateSeed()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to generate derivation seed")
		}
		log.Warn().Msg("No keyderiv.master_seed configured, using an ephemeral seed; vault keys will change on restart")
	}
	deriver, err := keyderiv.NewLocal(seed, cfg.KeyDeriv.KeyName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key derivation")
	}

	network, err := bitcoin.NewEsplora(cfg.Bitcoin, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Bitcoin network client")
	}
	native, err := bitcoin.NewNativeTransfer(cfg.Bitcoin.Network)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize native transfer")
	}

	sigSvc := service.NewHMACSignatureService()
	ledgerClient := ledger.NewClient(cfg.Ledger, sigSvc, nil)
	if cfg.Ledger.BaseURL == "" {
		log.Warn().Msg("No ledger.base_url configured, ledger transfers will be recorded as failed")
	}

	// Settlement workers
	settler := service.NewSettler(ledgerClient, native, st.settlements, cfg.Settlement.Workers, cfg.Settlement.QueueSize, log)
	settler.Start()

	// Core services
	clock := service.SystemClock{}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	willSvc := service.NewWillService(st.wills, clock, log)
	claimSvc := service.NewClaimService(st.wills, st.settlements, settler, clock, cfg.Ledger.TransferAmount, log)
	keySvc := service.NewKeyService(st.wills, deriver, network, clock, log)
	auditSvc := service.NewAuditService(st.audit, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WillSvc:        willSvc,
		ClaimSvc:       claimSvc,
		KeySvc:         keySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Drain queued settlements after the last claim has been accepted.
	settler.Stop()
	stats := settler.Stats()
	log.Info().
		Int64("succeeded", stats.Succeeded).
		Int64("failed", stats.Failed).
		Int64("dropped", stats.Dropped).
		Msg("Server exited")
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		log.Info().Msg("PostgreSQL connected")
		return &stores{
			wills:       pgStorage.NewWillRepo(pool),
			settlements: pgStorage.NewSettlementRepo(pool),
			audit:       pgStorage.NewAuditRepo(pool),
			health:      pgStorage.NewHealthCheck(pool),
			close:       pool.Close,
		}, nil
	case "memory":
		log.Warn().Msg("Using in-memory storage, wills are lost on restart")
		return &stores{
			wills:       memory.NewWillRepo(),
			settlements: memory.NewSettlementRepo(),
			audit:       memory.NewAuditRepo(),
			health:      memory.NewHealthCheck(),
			close:       func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
