package session

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hisabkitab/cli/internal/client/api"
	"github.com/hisabkitab/cli/internal/client/models"
	"github.com/hisabkitab/cli/internal/logging"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func insertCred(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO credentials(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

func getCred(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM credentials WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, "error")
}

// ---- fakes ----

type fakeAuth struct {
	loginToken string
	loginErr   error
	loginEmail string
	loginPass  string

	providerToken string
	providerErr   error

	registerProfile models.RegisterRequest
	registerErr     error

	user        *models.User
	userErr     error
	userFetches int
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (string, error) {
	f.loginEmail, f.loginPass = email, password
	return f.loginToken, f.loginErr
}

func (f *fakeAuth) LoginWithProvider(_ context.Context, providerToken string) (string, error) {
	f.providerToken = providerToken
	return f.loginToken, f.providerErr
}

func (f *fakeAuth) Register(_ context.Context, profile models.RegisterRequest) error {
	f.registerProfile = profile
	return f.registerErr
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.User, error) {
	f.userFetches++
	return f.user, f.userErr
}

type fakeSink struct {
	token   string
	cleared bool
}

func (f *fakeSink) SetToken(token string) { f.token = token }
func (f *fakeSink) ClearToken()           { f.token = ""; f.cleared = true }

// ---- tests ----

func TestInitialize_NoCredential(t *testing.T) {
	db := setupDB(t)
	auth := &fakeAuth{}
	s := NewStore(auth, &fakeSink{}, db, testLogger())

	s.Initialize(context.Background())

	assert.True(t, s.Ready())
	assert.False(t, s.IsAuthenticated())
	assert.Zero(t, auth.userFetches)
}

func TestInitialize_RestoresSession(t *testing.T) {
	db := setupDB(t)
	insertCred(t, db, "token", []byte("tok-123"))

	auth := &fakeAuth{user: &models.User{ID: 1, Email: "alice@example.org"}}
	sink := &fakeSink{}
	s := NewStore(auth, sink, db, testLogger())

	s.Initialize(context.Background())

	assert.True(t, s.Ready())
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok-123", sink.token)
	require.NotNil(t, s.Current())
	assert.Equal(t, "alice@example.org", s.Current().Email)
}

func TestInitialize_FailsOpenToLoggedOut(t *testing.T) {
	db := setupDB(t)
	insertCred(t, db, "token", []byte("tok-stale"))

	auth := &fakeAuth{userErr: &api.Error{Status: 401, Detail: "Could not validate credentials"}}
	s := NewStore(auth, &fakeSink{}, db, testLogger())

	s.Initialize(context.Background())

	assert.True(t, s.Ready())
	assert.False(t, s.IsAuthenticated())
}

func TestInitialize_RunsOnce(t *testing.T) {
	db := setupDB(t)
	insertCred(t, db, "token", []byte("tok-123"))

	auth := &fakeAuth{user: &models.User{ID: 1}}
	s := NewStore(auth, &fakeSink{}, db, testLogger())

	s.Initialize(context.Background())
	s.Initialize(context.Background())

	assert.Equal(t, 1, auth.userFetches)
}

func TestLogin_Success(t *testing.T) {
	db := setupDB(t)
	auth := &fakeAuth{loginToken: "tok-fresh", user: &models.User{ID: 7, Email: "alice@example.org"}}
	sink := &fakeSink{}
	s := NewStore(auth, sink, db, testLogger())

	err := s.Login(context.Background(), "alice@example.org", "hunter2")
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok-fresh", sink.token)
	assert.Equal(t, []byte("tok-fresh"), getCred(t, db, "token"))
	assert.Equal(t, "alice@example.org", s.LastEmail(context.Background()))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db := setupDB(t)
	auth := &fakeAuth{loginErr: &api.Error{Status: 401, Detail: "Invalid credentials"}}
	s := NewStore(auth, &fakeSink{}, db, testLogger())

	err := s.Login(context.Background(), "admin@x.com", "wrong")
	require.Error(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, getCred(t, db, "token"))
	assert.Equal(t, "Invalid credentials", api.Detail(err, "fallback"))
}

func TestLoginWithProvider_Success(t *testing.T) {
	db := setupDB(t)
	auth := &fakeAuth{loginToken: "tok-provider", user: &models.User{ID: 2, Email: "bob@example.org"}}
	sink := &fakeSink{}
	s := NewStore(auth, sink, db, testLogger())

	err := s.LoginWithProvider(context.Background(), "provider-id-token")
	require.NoError(t, err)

	assert.Equal(t, "provider-id-token", auth.providerToken)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, []byte("tok-provider"), getCred(t, db, "token"))
}

func TestLogout_ClearsSessionAndCredential(t *testing.T) {
	db := setupDB(t)
	auth := &fakeAuth{loginToken: "tok-fresh", user: &models.User{ID: 7, IsAdmin: true}}
	sink := &fakeSink{}
	s := NewStore(auth, sink, db, testLogger())

	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	require.True(t, s.IsAuthenticated())

	s.Logout(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAuthorized())
	assert.True(t, sink.cleared)
	assert.Nil(t, getCred(t, db, "token"))

	// Idempotent: a second logout causes no error and no panic.
	s.Logout(context.Background())
	assert.False(t, s.IsAuthenticated())
}

func TestIsAuthorized_RequiresAdminFlag(t *testing.T) {
	db := setupDB(t)
	auth := &fakeAuth{loginToken: "tok", user: &models.User{ID: 3, Email: "u@x.com"}}
	s := NewStore(auth, &fakeSink{}, db, testLogger())

	require.NoError(t, s.Login(context.Background(), "u@x.com", "pw"))
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAuthorized())
}

func TestRegister_PassesProfileThrough(t *testing.T) {
	db := setupDB(t)
	auth := &fakeAuth{}
	s := NewStore(auth, &fakeSink{}, db, testLogger())

	profile := models.RegisterRequest{Email: "new@x.com", Password: "pw", FullName: "New User"}
	require.NoError(t, s.Register(context.Background(), profile))
	assert.Equal(t, profile, auth.registerProfile)
	assert.False(t, s.IsAuthenticated())
}
