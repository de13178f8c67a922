package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/getready/ats-system/internal/api"
	"github.com/getready/ats-system/internal/api/handler"
	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
	"github.com/getready/ats-system/internal/core/service"
	"github.com/getready/ats-system/internal/infrastructure/config"
	mongodb "github.com/getready/ats-system/internal/infrastructure/db/mongo"
	redisdb "github.com/getready/ats-system/internal/infrastructure/db/redis"
	"github.com/getready/ats-system/internal/infrastructure/queue"
	"github.com/getready/ats-system/internal/infrastructure/scoring"
	"github.com/getready/ats-system/internal/infrastructure/storage"
	"github.com/getready/ats-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	blobs, err := storage.NewLocalBlobStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload directory unavailable")
	}

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	fileRepo := mongodb.NewFileRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	sessionRepo := redisdb.NewSessionRegistry(rdb, cfg.TokenTTL)
	fileTokens := redisdb.NewFileTokenStore(rdb)

	if err := seedAdmin(ctx, userRepo, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	sessions := service.NewSessionStore(authService, sessionRepo, cfg.TokenTTL, log)
	fileService := service.NewFileService(fileRepo, blobs, fileTokens, cfg.Storage.FileTokenTTL, log)
	jobService := service.NewJobService(jobRepo, appRepo, log)
	adminService := service.NewAdminService(userRepo, jobRepo, appRepo, cfg.DefaultPassword, log)
	auditService := service.NewAuditService(auditRepo, log)

	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, cfg.Audit.QueueSize, auditService, log)
	dispatcher.Start(ctx)

	scorer := scoring.NewClient(cfg.Scoring.URL, cfg.Scoring.Timeout)
	appService := service.NewApplicationService(
		appRepo, jobRepo, userRepo, fileService,
		scorer, storage.NewResumeTextExtractor(), dispatcher, auditRepo,
		cfg.Scoring.Timeout, log,
	)

	// --- Transport ---
	e := api.NewRouter(api.Handlers{
		Auth:        handler.NewAuthHandler(sessions),
		Job:         handler.NewJobHandler(jobService),
		Application: handler.NewApplicationHandler(appService),
		Admin:       handler.NewAdminHandler(adminService),
		File:        handler.NewFileHandler(fileService),
		Health:      handler.NewHealthHandler(),
		HealthDeps:  handler.NewHealthDependenciesHandler(db, rdb),
	}, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedAdmin guarantees an administrator exists so a fresh deployment can be
// configured through the API. Existing installs are left untouched.
func seedAdmin(ctx context.Context, users ports.UserRepository, cfg *config.Config, log zerolog.Logger) error {
	if _, err := users.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &domain.User{
		UUID:         uuid.NewString(),
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("bootstrap admin created")
	return nil
}
