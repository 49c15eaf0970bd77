// Package session holds the single source of truth for "who is logged in".
// The Store owns the Session (identity + credential): it is the only writer
// of the persisted token and the only component that installs or clears the
// bearer credential on the API gateway.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/hisabkitab/cli/internal/client/models"
	"github.com/hisabkitab/cli/internal/client/repositories/credentials"
	"github.com/hisabkitab/cli/internal/dbx"
	"github.com/hisabkitab/cli/internal/logging"
)

const (
	keyToken     = "token"
	keyLastEmail = "last_email"
)

// AuthAPI is the slice of the backend surface the Store needs. The concrete
// implementation lives in the services package.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	LoginWithProvider(ctx context.Context, providerToken string) (string, error)
	Register(ctx context.Context, profile models.RegisterRequest) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// TokenSink receives the bearer credential for outbound requests.
// *api.Client satisfies it.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// Store is the session store. All mutation of the Session happens through its
// methods; feature code only reads the derived state.
type Store struct {
	auth AuthAPI
	sink TokenSink
	db   *sql.DB
	log  logging.Logger

	initOnce sync.Once

	mu    sync.RWMutex
	ready bool
	user  *models.User
}

func NewStore(auth AuthAPI, sink TokenSink, db *sql.DB, log logging.Logger) *Store {
	return &Store{auth: auth, sink: sink, db: db, log: log}
}

func (s *Store) repo() credentials.Repository {
	return credentials.NewSQLiteRepository(s.db)
}

// Initialize attempts silent re-authentication from the persisted credential.
// It runs at most once per process and always leaves the store ready: when the
// token is missing or the identity fetch fails for any reason, the outcome is
// simply "not authenticated". It never fails towards a logged-in state and
// nothing is retried.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer func() {
			s.mu.Lock()
			s.ready = true
			s.mu.Unlock()
		}()

		token, err := s.repo().Get(ctx, keyToken)
		if err != nil {
			s.log.Warn(ctx, "reading stored credential failed", "error", err)
			return
		}
		if len(token) == 0 {
			return
		}

		s.sink.SetToken(string(token))

		user, err := s.auth.CurrentUser(ctx)
		if err != nil {
			s.log.Warn(ctx, "silent re-authentication failed", "error", err)
			return
		}

		s.mu.Lock()
		s.user = user
		s.mu.Unlock()
		s.log.Info(ctx, "session restored", "email", user.Email)
	})
}

// Login authenticates with email/password, persists the issued credential and
// populates the Session. On failure the Session stays unset and the returned
// error carries the backend's detail message where available.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.establish(ctx, token, email)
}

// LoginWithProvider exchanges a third-party identity token for a backend
// credential, with the same contract as Login. Obtaining the provider token
// is the operator's concern.
func (s *Store) LoginWithProvider(ctx context.Context, providerToken string) error {
	token, err := s.auth.LoginWithProvider(ctx, providerToken)
	if err != nil {
		return err
	}
	return s.establish(ctx, token, "")
}

// establish installs and persists the fresh credential, then fetches the
// identity it belongs to.
func (s *Store) establish(ctx context.Context, token, email string) error {
	s.sink.SetToken(token)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		if email != "" {
			return repo.Set(ctx, keyLastEmail, []byte(email))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("fetching identity: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Register creates a new account. It does not log in.
func (s *Store) Register(ctx context.Context, profile models.RegisterRequest) error {
	return s.auth.Register(ctx, profile)
}

// Logout erases the persisted credential and clears the Session. Calling it
// while logged out is a no-op; storage errors are logged, not surfaced.
func (s *Store) Logout(ctx context.Context) {
	s.sink.ClearToken()

	if err := s.repo().Delete(ctx, keyToken); err != nil {
		s.log.Error(ctx, "erasing stored credential failed", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Ready reports whether Initialize has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// IsAuthenticated reports whether a Session is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsAuthorized reports whether the Session's identity grants admin access.
func (s *Store) IsAuthorized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin
}

// Current returns the logged-in identity, or nil.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LastEmail returns the email of the last successful password login, for
// pre-filling the login prompt. Missing data yields "".
func (s *Store) LastEmail(ctx context.Context) string {
	v, err := s.repo().Get(ctx, keyLastEmail)
	if err != nil {
		return ""
	}
	return string(v)
}
