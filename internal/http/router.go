package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/funkyrave/funky-backend/internal/http/handlers"
	httpMW "github.com/funkyrave/funky-backend/internal/http/middleware"
)

type RouterConfig struct {
	AuthHandler      *httpH.AuthHandler
	AuthMiddleware   *httpMW.AuthMiddleware
	AdminHandler     *httpH.AdminHandler
	TierHandler      *httpH.TierHandler
	VenueHandler     *httpH.VenueHandler
	ExemptionHandler *httpH.ExemptionHandler
	LedgerHandler    *httpH.LedgerHandler
	TokenHandler     *httpH.TokenHandler
	HealthHandler    *httpH.HealthHandler

	CORSAllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS(cfg.CORSAllowOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}

		// Read-only observers
		if cfg.TokenHandler != nil {
			api.GET("/token", cfg.TokenHandler.Metadata)
			api.GET("/token/supply", cfg.TokenHandler.TotalSupply)
		}
		if cfg.TierHandler != nil {
			api.GET("/fee-tiers", cfg.TierHandler.ListFeeTiers)
			api.GET("/accounts/:id/tier", cfg.TierHandler.HolderTier)
			api.GET("/accounts/:id/fee-rate", cfg.TierHandler.FeeRate)
		}
		if cfg.LedgerHandler != nil {
			api.GET("/accounts/:id/balance", cfg.LedgerHandler.Balance)
			api.GET("/accounts/:id/allowances/:spender", cfg.LedgerHandler.Allowance)
		}
		if cfg.AdminHandler != nil {
			api.GET("/accounts/:id/roles", cfg.AdminHandler.GetRoles)
		}
		if cfg.VenueHandler != nil {
			api.GET("/venues/:id", cfg.VenueHandler.GetVenue)
		}
		if cfg.ExemptionHandler != nil {
			api.GET("/exemptions/:id", cfg.ExemptionHandler.IsExempt)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
			protected.GET("/me", cfg.AuthHandler.Me)
		}

		if cfg.LedgerHandler != nil {
			protected.POST("/transfers", cfg.LedgerHandler.Transfer)
			protected.POST("/transfers/delegated", cfg.LedgerHandler.TransferFrom)
			protected.POST("/allowances", cfg.LedgerHandler.Approve)
			protected.GET("/accounts/:id/transfers", cfg.LedgerHandler.History)
		}

		// Tier updaters and admins
		if cfg.TierHandler != nil {
			protected.PUT("/holders/:id/tier", cfg.TierHandler.SetHolderTier)
		}

		// Factories attest the venues they create
		if cfg.VenueHandler != nil {
			protected.POST("/factories/manifests", cfg.VenueHandler.RegisterManifest)
		}

		// Governance (role checks live in the services)
		admin := protected.Group("/admin")
		{
			if cfg.AdminHandler != nil {
				admin.POST("/admins", cfg.AdminHandler.AddAdmin)
				admin.DELETE("/admins/:id", cfg.AdminHandler.RemoveAdmin)
				admin.POST("/tier-updaters", cfg.AdminHandler.AddTierUpdater)
				admin.DELETE("/tier-updaters/:id", cfg.AdminHandler.RemoveTierUpdater)
				admin.POST("/service-accounts", cfg.AdminHandler.CreateServiceAccount)
			}
			if cfg.TierHandler != nil {
				admin.PUT("/fee-tiers", cfg.TierHandler.SetFeeRate)
			}
			if cfg.VenueHandler != nil {
				admin.POST("/factories", cfg.VenueHandler.AddFactory)
				admin.DELETE("/factories/:id", cfg.VenueHandler.RemoveFactory)
				admin.POST("/venues", cfg.VenueHandler.AddVenue)
				admin.DELETE("/venues/:id", cfg.VenueHandler.RemoveVenue)
			}
			if cfg.ExemptionHandler != nil {
				admin.POST("/exemptions", cfg.ExemptionHandler.SetExempt)
				admin.GET("/exemptions/:id/audit", cfg.ExemptionHandler.ListAudit)
			}
			if cfg.TokenHandler != nil {
				admin.PUT("/fee-recipient", cfg.TokenHandler.SetFeeRecipient)
			}
		}
	}

	return r
}
