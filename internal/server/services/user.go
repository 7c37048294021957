// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, password changes and
// issuing/refreshing JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/cryptox"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/logging"
	"github.com/dmitrijs2005/pinvault/internal/server/auth"
	"github.com/dmitrijs2005/pinvault/internal/server/config"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput is everything needed to open an account.
type RegisterInput struct {
	Email           string
	UserName        string
	Password        string
	ConfirmPassword string
	Pin             string
}

// UserService provides account and session operations:
// - Register: create accounts with password and PIN credentials
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
// - Me, ChangePassword
type UserService struct {
	storage
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	dummySalt                    []byte
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		storage:                      storage{db: db, repomanager: m, timeout: cfg.StorageTimeout},
		log:                          log.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		dummySalt:                    cryptox.NewSalt(),
	}
}

// Register validates the input and creates the account. The PIN is turned
// into a salt and verifier right away and never stored.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.Profile, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	userName, err := validateUserName(in.UserName)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	if in.Password != in.ConfirmPassword {
		return nil, validationError("passwords do not match")
	}
	if err := validatePin(in.Pin); err != nil {
		return nil, err
	}

	passwordSalt, passwordHash := hashPassword(in.Password)
	pinSalt, pinKey, pinVerifier := pinMaterial(in.Pin)
	common.WipeByteArray(pinKey)

	account := &models.Account{
		Email:        email,
		UserName:     userName,
		PasswordSalt: passwordSalt,
		PasswordHash: passwordHash,
		PinSalt:      pinSalt,
		PinVerifier:  pinVerifier,
	}

	err = s.call(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.repomanager.Accounts(s.db).Create(ctx, account)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("%w: email is already registered", common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.log.Info(ctx, "account registered", "account_id", account.ID)
	profile := account.Profile()
	return &profile, nil
}

// Login verifies email and password and, on success, returns a new TokenPair
// together with the account profile. Unknown email and wrong password are
// indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, *models.Profile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	var account *models.Account
	err = s.call(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Spend the same derivation time as for a real account.
			checkPassword(&models.Account{PasswordSalt: s.dummySalt}, password)
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, internalError(err)
	}
	if !checkPassword(account, password) {
		return nil, nil, common.ErrorUnauthorized
	}

	var pair *TokenPair
	err = s.call(ctx, func(ctx context.Context) error {
		var err error
		pair, err = s.generateTokenPair(ctx, account.ID, s.db)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	profile := account.Profile()
	return pair, &profile, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var token *models.RefreshToken
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		token, err = s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Me returns the profile of the account behind the session.
func (s *UserService) Me(ctx context.Context, id models.AccountID) (*models.Profile, error) {
	account, err := s.getAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := account.Profile()
	return &profile, nil
}

// ChangePassword replaces the password after checking the current one and
// revokes every refresh token of the account.
func (s *UserService) ChangePassword(ctx context.Context, id models.AccountID, oldPassword, newPassword, confirmPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if newPassword != confirmPassword {
		return validationError("passwords do not match")
	}

	account, err := s.getAccount(ctx, id)
	if err != nil {
		return err
	}
	if !checkPassword(account, oldPassword) {
		return validationError("current password is incorrect")
	}

	salt, hash := hashPassword(newPassword)
	err = s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).UpdatePassword(ctx, id, salt, hash); err != nil {
			return err
		}
		return s.repomanager.RefreshTokens(tx).DeleteByUser(ctx, id)
	})
	if err != nil {
		return internalError(err)
	}

	s.log.Info(ctx, "password changed", "account_id", id)
	return nil
}

// getAccount loads the session's account. A valid token for a missing
// account is an invalid session.
func (s *UserService) getAccount(ctx context.Context, id models.AccountID) (*models.Account, error) {
	if !validID(id) {
		return nil, common.ErrInvalidSession
	}
	var account *models.Account
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.repomanager.Accounts(s.db).GetByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidSession
		}
		return nil, internalError(err)
	}
	return account, nil
}

// --- helpers below ---

func (s *UserService) generateAccessToken(userID models.AccountID) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID models.AccountID, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, internalError(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
