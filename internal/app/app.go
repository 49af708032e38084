package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"helperbee_backend/database"
	"helperbee_backend/internal/config"
	"helperbee_backend/internal/email"
	"helperbee_backend/internal/handlers"
	"helperbee_backend/internal/identity"
	"helperbee_backend/internal/logger"
	"helperbee_backend/internal/payments"
	"helperbee_backend/internal/routes"
	"helperbee_backend/internal/services"
	"helperbee_backend/internal/storage"
)

// SetupRouter builds the full HTTP stack from its collaborators.
// Tests call this directly with fakes for the external pieces.
func SetupRouter(
	cfg *config.Config,
	db *gorm.DB,
	gateway payments.Gateway,
	emailProvider email.Provider,
	verifier identity.Verifier,
	store storage.Storage,
) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	sc := services.NewServiceContainer(db, cfg, gateway, emailProvider)
	h := handlers.NewAppHandlers(sc, store)

	router := gin.New()
	router.Use(gin.Recovery())
	routes.Register(router, h, verifier)

	return router
}

// Run boots the application with production collaborators.
func Run() error {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	gateway := payments.NewHTTPGateway(cfg.Payments.KeyID, cfg.Payments.KeySecret, cfg.Payments.BaseURL)
	emailProvider := email.NewSMTPProvider(cfg)
	verifier := identity.NewJWTVerifier(cfg.Identity.Secret, time.Duration(cfg.Identity.TTL)*time.Minute)

	store, err := buildStorage(cfg)
	if err != nil {
		return err
	}

	router := SetupRouter(cfg, db, gateway, emailProvider, verifier, store)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

func buildStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.Storage.Type == "s3" {
		return storage.NewS3Storage(cfg)
	}
	return storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
}
