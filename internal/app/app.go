package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/funkyrave/funky-backend/internal/data/db"
	httpMW "github.com/funkyrave/funky-backend/internal/http/middleware"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	theDB := pg.DB()
	if err := db.AutoMigrateAll(theDB); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}

	if err := db.SeedGenesis(theDB, log, db.GenesisConfig{
		AdminEmail:           cfg.GenesisAdminEmail,
		AdminPassword:        cfg.GenesisAdminPassword,
		FeeRecipientEmail:    cfg.GenesisFeeRecipientEmail,
		FeeRecipientPassword: cfg.GenesisFeeRecipientPassword,
		TotalSupply:          cfg.GenesisSupply,
	}); err != nil {
		log.Sync()
		return nil, fmt.Errorf("seed genesis: %w", err)
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet)
	handlerset := wireHandlers(log, serviceset)
	authMW := httpMW.NewAuthMiddleware(log, serviceset.Auth)
	router := wireRouter(cfg, handlerset, authMW)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
