package app

import (
	"github.com/gin-gonic/gin"

	apphttp "github.com/funkyrave/funky-backend/internal/http"
	httpH "github.com/funkyrave/funky-backend/internal/http/handlers"
	httpMW "github.com/funkyrave/funky-backend/internal/http/middleware"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
)

type Handlers struct {
	Auth      *httpH.AuthHandler
	Admin     *httpH.AdminHandler
	Tier      *httpH.TierHandler
	Venue     *httpH.VenueHandler
	Exemption *httpH.ExemptionHandler
	Ledger    *httpH.LedgerHandler
	Token     *httpH.TokenHandler
	Health    *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      httpH.NewAuthHandler(s.Auth),
		Admin:     httpH.NewAdminHandler(s.Role, s.Auth),
		Tier:      httpH.NewTierHandler(s.Tier),
		Venue:     httpH.NewVenueHandler(s.Venue),
		Exemption: httpH.NewExemptionHandler(s.Exemption),
		Ledger:    httpH.NewLedgerHandler(s.Ledger),
		Token:     httpH.NewTokenHandler(s.Token, s.Ledger),
		Health:    httpH.NewHealthHandler(),
	}
}

func wireRouter(cfg Config, h Handlers, auth *httpMW.AuthMiddleware) *gin.Engine {
	return apphttp.NewRouter(apphttp.RouterConfig{
		AuthHandler:      h.Auth,
		AuthMiddleware:   auth,
		AdminHandler:     h.Admin,
		TierHandler:      h.Tier,
		VenueHandler:     h.Venue,
		ExemptionHandler: h.Exemption,
		LedgerHandler:    h.Ledger,
		TokenHandler:     h.Token,
		HealthHandler:    h.Health,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})
}
