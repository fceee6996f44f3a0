// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token authentication,
// revocation, and the explicit password-change path.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

// PasswordHasher is the one-way password transform used by UserService.
// *auth.BcryptHasher satisfies it; tests substitute fakes.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
}

// dummyDigest is verified against when the email is unknown, so the
// unknown-email and wrong-password paths cost the same. It is a real bcrypt
// digest of a throwaway string, not a credential.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

var validate = validator.New()

// UserService provides authentication-related operations:
//   - Register: validate, hash, create the account and its first session token
//   - Login: verify credentials and issue a token
//   - Authenticate: turn a raw token into a verified account
//   - RevokeToken / ChangePassword: session and credential maintenance
type UserService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	hasher              PasswordHasher
	jwtSecret           []byte
	tokenValidityPeriod time.Duration
}

// NewUserService constructs a UserService using repositories, the password
// hasher, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                  db,
		repomanager:         m,
		hasher:              h,
		jwtSecret:           []byte(cfg.SecretKey),
		tokenValidityPeriod: cfg.TokenValidityDuration,
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address, so
// uniqueness and lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and issues its first session token. The
// account row and the session row are written in one transaction, so a
// registered user always has a live token.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, "", err
	}

	digest, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	var user *models.User
	var token string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repomanager.Users(tx).Create(ctx, &models.User{Email: email, PasswordDigest: digest})
		if err != nil {
			return err
		}
		t, err := s.issueToken(ctx, tx, u.ID)
		if err != nil {
			return err
		}
		user, token = u, t
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, "", common.ErrorEmailTaken
		}
		return nil, "", fmt.Errorf("error registering user: %w", err)
	}
	return user, token, nil
}

// Login verifies the credentials and, on success, issues and registers a new
// session token. An unknown email and a wrong password fail identically with
// common.ErrorInvalidCredentials; the dummy verification keeps the two paths
// close in timing.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(ctx, password, dummyDigest)
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	ok, err := s.hasher.Verify(ctx, password, user.PasswordDigest)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	if !ok {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := s.issueToken(ctx, s.db, user.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	return user, token, nil
}

// Authenticate resolves a raw token string into the account it belongs to.
// The signature is checked first; then the store must confirm the
// (id, token, scope) triple is still registered, which is what makes a signed
// token revocable.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, scope, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetByIDTokenScope(ctx, userID, token, scope)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorTokenNotActive
		}
		return nil, fmt.Errorf("error checking token: %w", err)
	}
	return user, nil
}

// RevokeToken removes the token from the account's session registry. The
// token stops authenticating immediately, even though its signature stays
// valid until expiry.
func (s *UserService) RevokeToken(ctx context.Context, userID, token string) error {
	if err := s.repomanager.Sessions(s.db).Remove(ctx, userID, token); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

// ChangePassword verifies the current password and rewrites the digest. The
// digest is recomputed only when the plaintext actually changes; re-submitting
// the current password is a no-op rather than a rehash.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if len(next) < common.MinPasswordLength {
		return common.ErrorValidation
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	ok, err := s.hasher.Verify(ctx, current, user.PasswordDigest)
	if err != nil {
		return common.ErrorInternal
	}
	if !ok {
		return common.ErrorInvalidCredentials
	}
	if next == current {
		return nil
	}

	digest, err := s.hasher.Hash(ctx, next)
	if err != nil {
		return common.ErrorInternal
	}
	if err := s.repomanager.Users(s.db).UpdatePasswordDigest(ctx, userID, digest); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// --- helpers below ---

func validateCredentials(email, password string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return common.ErrorValidation
	}
	if len(password) < common.MinPasswordLength {
		return common.ErrorValidation
	}
	return nil
}

// issueToken mints a signed token for userID under the auth scope and appends
// it to the session registry through the given handle (plain DB or tx).
func (s *UserService) issueToken(ctx context.Context, db dbx.DBTX, userID string) (string, error) {
	token, err := auth.GenerateToken(userID, common.TokenScopeAuth, s.jwtSecret, s.tokenValidityPeriod)
	if err != nil {
		return "", err
	}
	if err := s.repomanager.Sessions(db).Append(ctx, userID, common.TokenScopeAuth, token); err != nil {
		return "", err
	}
	return token, nil
}
