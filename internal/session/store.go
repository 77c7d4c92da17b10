// Package session owns the signed-in identity and its credential token.
//
// The identity and the token are always present together: every mutation
// goes through Store, which writes or clears both persisted slots in one
// call and treats any half-present state as signed out.
package session

//go:generate mockgen -destination=mock_session.go -package=session auction-client/internal/session Authenticator

import (
	"auction-client/internal/biddingerrors"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticator is the part of the gateway the session needs
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.Identity, string, error)
	Register(ctx context.Context, name, email, password string) error
	Me(ctx context.Context, token string) (models.Identity, error)
}

// RestoreStrategy decides how a persisted session is trusted at startup
type RestoreStrategy int

const (
	// Revalidate asks the gateway who the token belongs to
	Revalidate RestoreStrategy = iota
	// TrustCached uses the cached identity; expired JWTs are still dropped
	TrustCached
)

// ParseStrategy reads "revalidate" or "trust"
func ParseStrategy(s string) (RestoreStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "revalidate":
		return Revalidate, nil
	case "trust", "trust-cached", "cached":
		return TrustCached, nil
	default:
		return Revalidate, fmt.Errorf("unknown restore strategy %q: want revalidate or trust", s)
	}
}

// EnvDecode reads the strategy from an environment variable
func (r *RestoreStrategy) EnvDecode(val string) error {
	strategy, err := ParseStrategy(val)
	if err != nil {
		return err
	}
	*r = strategy
	return nil
}

func (r RestoreStrategy) String() string {
	if r == TrustCached {
		return "trust"
	}
	return "revalidate"
}

// Store is the process-wide session. It is safe for concurrent use; no lock
// is held while the gateway is called.
type Store struct {
	auth     Authenticator
	db       repository.SessionDB
	strategy RestoreStrategy
	now      func() time.Time

	mu      sync.RWMutex
	current models.Session
}

// NewStore creates an empty session; call Restore to load a persisted one
func NewStore(auth Authenticator, db repository.SessionDB, strategy RestoreStrategy) *Store {
	return &Store{
		auth:     auth,
		db:       db,
		strategy: strategy,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for token expiry checks
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Current returns a copy of the session
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.current.Authenticated() {
		return models.Session{}
	}
	identity := *s.current.Identity
	return models.Session{Identity: &identity, Token: s.current.Token}
}

// Identity returns the signed-in identity, or nil
func (s *Store) Identity() *models.Identity {
	return s.Current().Identity
}

// Token returns the credential token, or "" when signed out
func (s *Store) Token() string {
	return s.Current().Token
}

// Authenticated reports whether an identity is signed in
func (s *Store) Authenticated() bool {
	return s.Current().Authenticated()
}

// SignIn authenticates with the gateway and persists the new session.
// On failure the previous session is left as it was.
func (s *Store) SignIn(ctx context.Context, email, password string) (models.Identity, error) {
	identity, token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		utils.Warn("sign in failed", map[string]any{"email": email, "error": err.Error()})
		return models.Identity{}, authFailure("sign in", "login failed", biddingerrors.ErrInvalidCredentials, err)
	}

	if err := s.persist(ctx, identity, token); err != nil {
		return models.Identity{}, fmt.Errorf("session: sign in: %w", err)
	}
	s.set(identity, token)

	utils.Info("signed in", map[string]any{"user_id": identity.ID})
	return identity, nil
}

// SignUp registers an account. The caller signs in separately.
func (s *Store) SignUp(ctx context.Context, name, email, password string) error {
	if err := s.auth.Register(ctx, name, email, password); err != nil {
		utils.Warn("sign up failed", map[string]any{"email": email, "error": err.Error()})
		return authFailure("sign up", "registration failed", biddingerrors.ErrRegistrationFailed, err)
	}
	utils.Info("registered", map[string]any{"email": email})
	return nil
}

// SignOut forgets the session in memory and in storage. Calling it while
// signed out is a no-op.
func (s *Store) SignOut(ctx context.Context) error {
	s.reset()
	if err := s.db.Delete(ctx, repository.SlotToken, repository.SlotIdentity); err != nil {
		return fmt.Errorf("session: sign out: %w", err)
	}
	utils.Info("signed out", nil)
	return nil
}

// Invalidate drops a session whose credential the gateway rejected
func (s *Store) Invalidate(ctx context.Context) {
	s.reset()
	if err := s.db.Delete(ctx, repository.SlotToken, repository.SlotIdentity); err != nil {
		utils.Error("failed to clear rejected session", map[string]any{"error": err.Error()})
		return
	}
	utils.Warn("credential rejected, session cleared", nil)
}

// Restore loads the persisted session. It returns false when there is none
// or when it is no longer valid; in the latter case storage is cleared.
// A gateway that cannot be reached leaves storage untouched and returns the error.
func (s *Store) Restore(ctx context.Context) (bool, error) {
	token, err := s.slot(ctx, repository.SlotToken)
	if err != nil {
		return s.restoreFailed(ctx, err)
	}
	rawIdentity, err := s.slot(ctx, repository.SlotIdentity)
	if err != nil {
		return s.restoreFailed(ctx, err)
	}

	if token == "" && rawIdentity == "" {
		s.reset()
		return false, nil
	}
	if token == "" || rawIdentity == "" {
		utils.Warn("partial session found, clearing", nil)
		return false, s.discard(ctx)
	}

	var cached models.Identity
	if err := json.Unmarshal([]byte(rawIdentity), &cached); err != nil || cached.ID == 0 {
		utils.Warn("unreadable cached identity, clearing", nil)
		return false, s.discard(ctx)
	}

	switch s.strategy {
	case TrustCached:
		if tokenExpired(token, s.now()) {
			utils.Info("cached token expired, clearing", map[string]any{"user_id": cached.ID})
			return false, s.discard(ctx)
		}
		s.set(cached, token)

	default:
		fresh, err := s.auth.Me(ctx, token)
		if errors.Is(err, biddingerrors.ErrUnauthorized) {
			utils.Info("stored token rejected, clearing", map[string]any{"user_id": cached.ID})
			return false, s.discard(ctx)
		}
		if err != nil {
			return false, fmt.Errorf("session: revalidate: %w", err)
		}
		if fresh != cached {
			if err := s.persist(ctx, fresh, token); err != nil {
				return false, fmt.Errorf("session: refresh identity: %w", err)
			}
		}
		s.set(fresh, token)
	}

	utils.Info("session restored", map[string]any{"user_id": s.Identity().ID})
	return true, nil
}

// restoreFailed clears storage that cannot be decoded and passes any other error through
func (s *Store) restoreFailed(ctx context.Context, err error) (bool, error) {
	if !errors.Is(err, biddingerrors.ErrSlotUnreadable) {
		return false, err
	}
	utils.Warn("unreadable session storage, clearing", map[string]any{"error": err.Error()})
	return false, s.discard(ctx)
}

func (s *Store) slot(ctx context.Context, key string) (string, error) {
	v, err := s.db.Get(ctx, key)
	if errors.Is(err, biddingerrors.ErrSlotEmpty) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: restore: %w", err)
	}
	return v, nil
}

func (s *Store) persist(ctx context.Context, identity models.Identity, token string) error {
	encoded, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	return s.db.SetAll(ctx, map[string]string{
		repository.SlotToken:    token,
		repository.SlotIdentity: string(encoded),
	})
}

func (s *Store) discard(ctx context.Context) error {
	s.reset()
	if err := s.db.Delete(ctx, repository.SlotToken, repository.SlotIdentity); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

func (s *Store) set(identity models.Identity, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.Session{Identity: &identity, Token: token}
}

func (s *Store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.Session{}
}

// tokenExpired reads the exp claim without verifying the signature; the
// gateway stays the authority, this only avoids restoring a token that has
// certainly lapsed. Tokens that are not JWTs never expire here.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// authFailure wraps a gateway failure with the message to show the user.
// Rejections by the gateway also match sentinel; transport failures do not.
func authFailure(op, fallback string, sentinel error, err error) error {
	wrapped := err
	if errors.Is(err, biddingerrors.ErrGatewayStatus) {
		wrapped = fmt.Errorf("%w: %w", sentinel, err)
	}
	return &biddingerrors.AuthError{
		Op:      op,
		Message: biddingerrors.UserMessage(err, fallback),
		Err:     wrapped,
	}
}
