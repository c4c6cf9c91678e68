package app

import (
	"strings"
	"time"

	"github.com/funkyrave/funky-backend/internal/platform/logger"
	"github.com/funkyrave/funky-backend/internal/utils"
)

type Config struct {
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	GenesisAdminEmail           string
	GenesisAdminPassword        string
	GenesisFeeRecipientEmail    string
	GenesisFeeRecipientPassword string
	GenesisSupply               int64

	CORSAllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	var origins []string
	if raw := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return Config{
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,

		GenesisAdminEmail:           utils.GetEnv("GENESIS_ADMIN_EMAIL", "", log),
		GenesisAdminPassword:        utils.GetEnv("GENESIS_ADMIN_PASSWORD", "", log),
		GenesisFeeRecipientEmail:    utils.GetEnv("GENESIS_FEE_RECIPIENT_EMAIL", "", log),
		GenesisFeeRecipientPassword: utils.GetEnv("GENESIS_FEE_RECIPIENT_PASSWORD", "", log),
		GenesisSupply:               utils.GetEnvAsInt64("GENESIS_SUPPLY", 30_000_000_000, log),

		CORSAllowOrigins: origins,
	}
}
