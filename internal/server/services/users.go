// Package services contains server-side business logic. UserService handles
// registration, login and the issuing and rotation of tokens.
package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/cryptox"
	"github.com/dmitrijs2005/duosync/internal/dbx"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/logging"
	"github.com/dmitrijs2005/duosync/internal/server/auth"
	"github.com/dmitrijs2005/duosync/internal/server/config"
	"github.com/dmitrijs2005/duosync/internal/server/models"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginResult is a fresh token pair plus the identity of the caller's
// document.
type LoginResult struct {
	TokenPair
	Identity document.Identity
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		logger:                       l.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

// Register creates an account for email. The document identity is derived
// from the email; a taken email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email string, salt, verifier []byte) (*models.User, error) {
	email = normalizeEmail(email)
	identity, err := document.IdentityFromEmail(email)
	if err != nil || len(salt) == 0 || len(verifier) == 0 {
		return nil, common.ErrorInvalidInput
	}

	user, err := s.repomanager.Users(s.db).Create(ctx, &models.User{
		Email:    email,
		Identity: identity,
		Salt:     salt,
		Verifier: verifier,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "identity", identity)
	return user, nil
}

// GetSalt returns the stored salt for email. Unknown emails get a stable
// salt derived from the server secret so probing does not reveal which
// accounts exist.
func (s *UserService) GetSalt(ctx context.Context, email string) ([]byte, error) {
	email = normalizeEmail(email)
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return s.decoySalt(email), nil
		}
		return nil, common.ErrorInternal
	}
	return user.Salt, nil
}

func (s *UserService) decoySalt(email string) []byte {
	mac := hmac.New(sha256.New, s.jwtSecret)
	mac.Write([]byte("salt:" + email))
	return mac.Sum(nil)[:cryptox.SaltSize]
}

// Login checks verifierCandidate against the stored verifier and, on
// success, issues a new token pair.
func (s *UserService) Login(ctx context.Context, email string, verifierCandidate []byte) (*LoginResult, error) {
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if subtle.ConstantTimeCompare(user.Verifier, verifierCandidate) != 1 {
		s.logger.Warn(ctx, "login rejected", "identity", user.Identity)
		return nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, s.db, user.ID, user.Identity)
	if err != nil {
		return nil, err
	}
	return &LoginResult{TokenPair: *pair, Identity: user.Identity}, nil
}

// RefreshToken spends refreshToken and returns a new pair. The old token is
// deleted and the new one stored in the same transaction.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(s.now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, tx, token.UserID, token.Identity)
		return genErr
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// PurgeExpiredTokens removes refresh tokens that can no longer be used.
func (s *UserService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	n, err := s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Debug(ctx, "expired refresh tokens purged", "count", n)
	}
	return n, nil
}

func (s *UserService) generateTokenPair(ctx context.Context, db dbx.DBTX, userID string, identity document.Identity) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(userID, identity, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.repomanager.RefreshTokens(db).Create(ctx, userID, refreshToken, s.refreshTokenValidityDuration); err != nil {
		s.logger.Error(ctx, "store refresh token", "error", err)
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
