// Package service provides the authentication and history business logic,
// delegating persistence to a key-value store.
package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/ihangire/ihangire/internal/models"
)

// KVStore defines the persistence operations required by the services.
type KVStore interface {
	// Get returns the value stored under key; the bool is false when absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores value under key, replacing any existing value.
	Put(ctx context.Context, key, value string) error
	// Delete removes key from the store; deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error
}

// Storage keys, matching the original application's localStorage layout.
const (
	usersKey   = "ihangire_users"
	sessionKey = "ihangire_session"
)

// Authentication failure taxonomy. These render inline near the auth form;
// none of them is fatal.
var (
	// ErrInvalidInput signals an empty required field or unknown provider.
	ErrInvalidInput = errors.New("email and password are required")
	// ErrDuplicateAccount signals a sign-up with an already-registered email.
	ErrDuplicateAccount = errors.New("an account with this email already exists")
	// ErrAccountNotFound signals a login for an unregistered email.
	ErrAccountNotFound = errors.New("no account found with this email")
	// ErrInvalidCredential signals a login with a wrong password.
	ErrInvalidCredential = errors.New("incorrect password")
)

// Synthetic identities used by the social-login stubs.
const (
	googleStubEmail = "user@google.com"
	githubStubEmail = "user@github.com"
)

// AuthService implements the mock authentication flow: a plaintext
// email-to-password directory plus a single session record, both persisted
// in the local key-value store. This is a placeholder with no security
// value; real use would need hashed credentials verified server-side.
type AuthService struct {
	kv  KVStore
	log *zap.Logger
}

// NewAuthService constructs an AuthService over the given store.
func NewAuthService(kv KVStore, log *zap.Logger) *AuthService {
	return &AuthService{kv: kv, log: log}
}

// loadUsers returns the email-to-password directory. Missing or corrupt
// data degrades to an empty directory rather than an error.
func (s *AuthService) loadUsers(ctx context.Context) map[string]string {
	users := make(map[string]string)
	raw, ok, err := s.kv.Get(ctx, usersKey)
	if err != nil {
		s.log.Warn("failed to read user directory", zap.Error(err))
		return users
	}
	if !ok {
		return users
	}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.log.Warn("corrupt user directory, treating as empty", zap.Error(err))
		return map[string]string{}
	}
	return users
}

// establishSession persists the session record for email. Persistence
// failures are logged, not propagated: the user stays logged in for the
// lifetime of the process either way.
func (s *AuthService) establishSession(ctx context.Context, email string) {
	raw, err := json.Marshal(models.User{Email: email})
	if err != nil {
		s.log.Warn("failed to encode session", zap.Error(err))
		return
	}
	if err := s.kv.Put(ctx, sessionKey, string(raw)); err != nil {
		s.log.Warn("failed to persist session", zap.Error(err))
	}
}

// SignUp registers a new user and establishes a session for it.
// Fails with ErrInvalidInput when either field is empty and with
// ErrDuplicateAccount when the email is already registered; a failed
// sign-up never alters the stored credential.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	users := s.loadUsers(ctx)
	if _, exists := users[email]; exists {
		return models.User{}, ErrDuplicateAccount
	}

	users[email] = password
	raw, err := json.Marshal(users)
	if err != nil {
		s.log.Warn("failed to encode user directory", zap.Error(err))
	} else if err := s.kv.Put(ctx, usersKey, string(raw)); err != nil {
		s.log.Warn("failed to persist user directory", zap.Error(err))
	}

	user := models.User{Email: email}
	s.establishSession(ctx, email)
	return user, nil
}

// Login authenticates an existing user and establishes a session.
// The password comparison is exact: case-sensitive, no hashing.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	users := s.loadUsers(ctx)

	stored, exists := users[email]
	if !exists {
		return models.User{}, ErrAccountNotFound
	}
	if stored != password {
		return models.User{}, ErrInvalidCredential
	}

	user := models.User{Email: email}
	s.establishSession(ctx, email)
	return user, nil
}

// SocialLogin is a deterministic stub for provider-based sign-in. It maps
// each known provider to a fixed synthetic email and establishes a session
// without consulting the user directory. Unknown providers fail with
// ErrInvalidInput.
func (s *AuthService) SocialLogin(ctx context.Context, provider string) (models.User, error) {
	var email string
	switch provider {
	case "google":
		email = googleStubEmail
	case "github":
		email = githubStubEmail
	default:
		return models.User{}, ErrInvalidInput
	}

	user := models.User{Email: email}
	s.establishSession(ctx, email)
	return user, nil
}

// Logout clears the session unconditionally. Idempotent.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.kv.Delete(ctx, sessionKey); err != nil {
		s.log.Warn("failed to clear session", zap.Error(err))
	}
}

// CurrentUser returns the session's user, if any. Missing or corrupt
// session data yields (zero, false), never an error.
func (s *AuthService) CurrentUser(ctx context.Context) (models.User, bool) {
	raw, ok, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		s.log.Warn("failed to read session", zap.Error(err))
		return models.User{}, false
	}
	if !ok {
		return models.User{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.Email == "" {
		return models.User{}, false
	}
	return user, true
}
