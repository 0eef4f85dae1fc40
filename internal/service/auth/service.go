package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/domain/auth"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/email"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/jwt"
	"github.com/chronnix/chronnix-backend-go/internal/repository/postgresql"
)

const codeTTL = 15 * time.Minute

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     auth.UserRepository
	codeRepo     auth.LoginCodeRepository
	accountRepo  account.AccountRepository
	jwtService   jwt.Service
	emailService email.EmailService
}

func NewAuthService(
	db *database.DB,
	userRepo auth.UserRepository,
	codeRepo auth.LoginCodeRepository,
	accountRepo account.AccountRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
) auth.Service {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		codeRepo:     codeRepo,
		accountRepo:  accountRepo,
		jwtService:   jwtService,
		emailService: emailService,
	}
}

// RequestCode implements auth.Service.
func (s *AuthServiceImpl) RequestCode(ctx context.Context, req auth.RequestCodeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			return fmt.Errorf("failed to look up user: %w", err)
		}
		// First login bootstraps the account and the user together.
		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			newAccount, err := s.accountRepo.Create(txCtx, account.Account{
				Name:     accountNameFromEmail(req.Email),
				Locale:   "fr",
				Timezone: "Europe/Brussels",
			})
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			user, err = s.userRepo.Create(txCtx, auth.User{
				AccountID: newAccount.ID,
				Email:     req.Email,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate login code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash login code: %w", err)
	}

	expiresAt := time.Now().UTC().Add(codeTTL)
	if _, err := s.codeRepo.Create(ctx, auth.LoginCode{
		UserID:    user.ID,
		CodeHash:  string(hash),
		ExpiresAt: expiresAt,
	}); err != nil {
		return fmt.Errorf("failed to store login code: %w", err)
	}

	if err := s.emailService.SendLoginCode(req.Email, code, expiresAt.Format("02/01/2006 15:04")); err != nil {
		return fmt.Errorf("failed to send login code: %w", err)
	}

	slog.Info("Login code sent", "user_id", user.ID)
	return nil
}

// VerifyCode implements auth.Service.
func (s *AuthServiceImpl) VerifyCode(ctx context.Context, req auth.VerifyCodeRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// Same error as a wrong code, so the endpoint does not leak
			// which emails exist.
			return auth.TokenResponse{}, auth.ErrInvalidLoginCode
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	code, err := s.codeRepo.GetLatestByUserID(ctx, user.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	now := time.Now().UTC()
	if code.Consumed() {
		return auth.TokenResponse{}, auth.ErrLoginCodeConsumed
	}
	if code.Expired(now) {
		return auth.TokenResponse{}, auth.ErrLoginCodeExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(code.CodeHash), []byte(req.Code)) != nil {
		return auth.TokenResponse{}, auth.ErrInvalidLoginCode
	}

	if err := s.codeRepo.MarkConsumed(ctx, code.ID); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(user)
}

// Refresh implements auth.Service.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotation: the old refresh token dies with the exchange.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(user)
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(user auth.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.AccountID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}

// generateCode returns an 8-digit numeric code with a crypto-grade source.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08d", n.Int64()), nil
}

func accountNameFromEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	return email[:at]
}
