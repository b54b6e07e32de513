package app

import (
	"fmt"
	"time"

	"jobportal_backend/database"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/storage"
	"jobportal_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run boots the whole service: config, logger, database, storage and
// the HTTP server. It only returns on a fatal startup error.
func Run() error {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := connectDB(cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Database migrated")

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter assembles the gin engine with every dependency wired.
// Split from Run so tests can build a router against their own config
// and database.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	tokens := newTokenService(cfg)
	policy := auth.NewPolicy(cfg.AdminEmail)
	emailProvider := newEmailProvider(cfg)

	container := services.NewServiceContainer(services.ContainerDeps{
		Users:             repositories.NewUserRepository(db),
		Jobs:              repositories.NewJobRepository(db),
		Applications:      repositories.NewApplicationRepository(db),
		CandidateProfiles: repositories.NewCandidateProfileRepository(db),
		EmployerProfiles:  repositories.NewEmployerProfileRepository(db),
		Tokens:            tokens,
		Policy:            policy,
		Storage:           store,
		EmailProvider:     emailProvider,
		AdminEmail:        cfg.AdminEmail,
	})

	appHandlers := handlers.NewAppHandlers(container, validator.New(), handlers.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	routes.Register(router, appHandlers, tokens, policy)
	return router, nil
}

func connectDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Info("Connected to database")
	return db, nil
}

// newTokenService returns nil when no signing secret is configured; the
// auth middleware answers 500 on protected routes in that state instead
// of accepting unverifiable tokens.
func newTokenService(cfg *config.Config) *auth.TokenService {
	if cfg.JWT.Secret == "" {
		logger.Warn("JWT secret not configured, protected routes will fail")
		return nil
	}
	ttl := time.Duration(cfg.JWT.TTLDays) * 24 * time.Hour
	return auth.NewTokenService(cfg.JWT.Secret, ttl)
}

func newEmailProvider(cfg *config.Config) email.Provider {
	emailCfg := email.Config{
		SMTPHost:    cfg.Email.SMTPHost,
		SMTPPort:    cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUsername,
		Password:    cfg.Email.SMTPPassword,
		FromEmail:   cfg.Email.FromEmail,
		FromName:    cfg.Email.FromName,
		UseSSL:      cfg.Email.UseSSL,
		AppName:     cfg.Email.AppName,
		FrontendURL: cfg.Email.FrontendURL,
	}

	if !emailCfg.Configured() {
		logger.Warn("SMTP not configured, transactional email disabled")
		return email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(emailCfg)
	if err != nil {
		logger.Warn("Invalid SMTP config, transactional email disabled", "error", err.Error())
		return email.NoopProvider{}
	}
	return provider
}
