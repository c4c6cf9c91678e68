package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/funkyrave/funky-backend/internal/data/repos"
	types "github.com/funkyrave/funky-backend/internal/domain"
	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
	"github.com/funkyrave/funky-backend/internal/platform/logger"
	"github.com/funkyrave/funky-backend/internal/requestdata"
)

type AuthService interface {
	Register(ctx context.Context, email, password, kind string) (*types.Account, error)
	// CreateServiceAccount registers a service-kind account on behalf of an
	// admin caller. Service accounts are the only valid tier updater targets.
	CreateServiceAccount(ctx context.Context, email, password string) (*types.Account, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context) (string, string, error)
	Logout(ctx context.Context) error
	// SetContextFromToken validates an access token and attaches the caller
	// identity to the returned context.
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db               *gorm.DB
	log              *logger.Logger
	accountRepo      repos.AccountRepo
	accountTokenRepo repos.AccountTokenRepo
	adminRoleRepo    repos.AdminRoleRepo
	jwtSecretKey     string
	accessTTL        time.Duration
	refreshTTL       time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	accountRepo repos.AccountRepo,
	accountTokenRepo repos.AccountTokenRepo,
	adminRoleRepo repos.AdminRoleRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := baseLog.With("service", "AuthService")
	return &authService{
		db:               db,
		log:              serviceLog,
		accountRepo:      accountRepo,
		accountTokenRepo: accountTokenRepo,
		adminRoleRepo:    adminRoleRepo,
		jwtSecretKey:     jwtSecretKey,
		accessTTL:        accessTTL,
		refreshTTL:       refreshTTL,
	}
}

func (as *authService) Register(ctx context.Context, email, password, kind string) (*types.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperrors.ErrInvalidArgument)
	}
	if kind == "" {
		kind = types.AccountKindUser
	}
	if kind != types.AccountKindUser && kind != types.AccountKindService {
		return nil, fmt.Errorf("unknown account kind %q: %w", kind, apperrors.ErrInvalidArgument)
	}
	exists, err := as.accountRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrInvalidArgument)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	account := &types.Account{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
		Kind:     kind,
		Balance:  0,
	}
	if _, err := as.accountRepo.Create(ctx, nil, []*types.Account{account}); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	as.log.Info("Account registered", "account_id", account.ID, "kind", kind)
	return account, nil
}

func (as *authService) CreateServiceAccount(ctx context.Context, email, password string) (*types.Account, error) {
	if _, err := requireAdmin(ctx, nil, as.adminRoleRepo); err != nil {
		return nil, err
	}
	return as.Register(ctx, email, password, types.AccountKindService)
}

func (as *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	accounts, err := as.accountRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("resolve account: %w", err)
	}
	if len(accounts) == 0 {
		return "", "", apperrors.ErrUnauthorized
	}
	account := accounts[0]
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", "", apperrors.ErrUnauthorized
	}

	var accessToken, refreshToken string
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.accountTokenRepo.DeleteByAccountID(ctx, tx, account.ID); err != nil {
			return fmt.Errorf("clear stale tokens: %w", err)
		}
		accessToken, err = as.generateAccessToken(account.ID)
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}
		refreshToken = uuid.New().String()
		if _, err := as.accountTokenRepo.Create(ctx, tx, []*types.AccountToken{{
			ID:           uuid.New(),
			AccountID:    account.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}}); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	as.log.Debug("Account logged in", "account_id", account.ID)
	return accessToken, refreshToken, nil
}

func (as *authService) Refresh(ctx context.Context) (string, string, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.AccountID == uuid.Nil || rd.RefreshToken == "" {
		return "", "", apperrors.ErrUnauthorized
	}

	var accessToken, refreshToken string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tokens, err := as.accountTokenRepo.GetByAccountIDs(ctx, tx, []uuid.UUID{rd.AccountID})
		if err != nil {
			return fmt.Errorf("read tokens: %w", err)
		}
		var current *types.AccountToken
		for _, tok := range tokens {
			if tok.RefreshToken == rd.RefreshToken {
				current = tok
				break
			}
		}
		if current == nil || current.ExpiresAt.Before(time.Now()) {
			return apperrors.ErrUnauthorized
		}
		if err := as.accountTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{current.ID}); err != nil {
			return fmt.Errorf("rotate token: %w", err)
		}
		accessToken, err = as.generateAccessToken(rd.AccountID)
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}
		refreshToken = uuid.New().String()
		if _, err := as.accountTokenRepo.Create(ctx, tx, []*types.AccountToken{{
			ID:           uuid.New(),
			AccountID:    rd.AccountID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}}); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) Logout(ctx context.Context) error {
	accountID := requestdata.CallerID(ctx)
	if accountID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	if err := as.accountTokenRepo.DeleteByAccountID(ctx, nil, accountID); err != nil {
		return fmt.Errorf("delete tokens: %w", err)
	}
	as.log.Debug("Account logged out", "account_id", accountID)
	return nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, apperrors.ErrUnauthorized
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return ctx, apperrors.ErrUnauthorized
	}
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return ctx, apperrors.ErrUnauthorized
	}
	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		AccountID:   accountID,
	}), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) generateAccessToken(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": accountID.String(),
		"iat": now.Unix(),
		"exp": now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}
