package credstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/caremate-ai/caremate/internal/client/storage"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credstore_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM kv`)
	require.NoError(t, err)
	return db
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	return New(setupDB(t), true)
}

func TestHashPassword(t *testing.T) {
	// SHA-256("demo123"), lowercase hex. The digest is the stored format and
	// must stay stable across versions.
	require.Equal(t,
		"d3ad9315b7be5dd53b31a273b3b3aba5defe700808305aa16a3062b76658a791",
		HashPassword("demo123"))
	require.Equal(t, HashPassword("pw1"), HashPassword("pw1"))
	require.NotEqual(t, HashPassword("pw1"), HashPassword("pw2"))
}

func TestSignupThenLogin(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, "Ann", "ann@x.com", "pw1"))
	require.NoError(t, s.Login(ctx, "ann@x.com", "pw1"))

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	require.Equal(t, "ann@x.com", cur.Email)
	require.Equal(t, "Ann", cur.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, "Ann", "ann@x.com", "pw1"))
	require.ErrorIs(t, s.Login(ctx, "ann@x.com", "pw2"), ErrInvalidCredentials)

	ok, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := setupStore(t)
	require.ErrorIs(t, s.Login(context.Background(), "nobody@x.com", "pw"), ErrInvalidCredentials)
}

func TestLogin_NoLockout(t *testing.T) {
	// Current behavior: no attempt counting or throttling. Any number of
	// failed attempts still allows the correct credentials through.
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, "Ann", "ann@x.com", "pw1"))
	for i := 0; i < 20; i++ {
		require.ErrorIs(t, s.Login(ctx, "ann@x.com", "wrong"), ErrInvalidCredentials)
	}
	require.NoError(t, s.Login(ctx, "ann@x.com", "pw1"))
}

func TestSignup_Validation(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.Signup(ctx, "", "ann@x.com", "pw"), ErrValidation)
	require.ErrorIs(t, s.Signup(ctx, "Ann", "", "pw"), ErrValidation)
	require.ErrorIs(t, s.Signup(ctx, "Ann", "   ", "pw"), ErrValidation)
	require.ErrorIs(t, s.Signup(ctx, "Ann", "ann@x.com", ""), ErrValidation)
}

func TestSignup_DuplicateEmailCaseInsensitive(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, "Ann", "ann@x.com", "pw1"))
	require.ErrorIs(t, s.Signup(ctx, "Other", "ANN@X.COM", "pw2"), ErrDuplicateAccount)
	require.ErrorIs(t, s.Signup(ctx, "Other", "Ann@x.Com", "pw2"), ErrDuplicateAccount)
}

func TestLogin_DemoAccountWithEmptyTable(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, DemoEmail, DemoPassword))

	ok, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// no record exists, so the identity carries the email only
	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	require.Equal(t, DemoEmail, cur.Email)
	require.Empty(t, cur.Name)
}

func TestLogin_DemoAccountCaseInsensitiveEmail(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Login(context.Background(), "DEMO@CAREMATE.AI", DemoPassword))
}

func TestLogin_DemoAccountDisabled(t *testing.T) {
	s := New(setupDB(t), false)
	require.ErrorIs(t, s.Login(context.Background(), DemoEmail, DemoPassword), ErrInvalidCredentials)
}

func TestLogout_Idempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Logout(ctx)) // nothing to clear

	require.NoError(t, s.Login(ctx, DemoEmail, DemoPassword))
	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx))

	ok, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.Nil(t, cur)
}

func TestFindByEmail(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, "Ann", "ann@x.com", "pw1"))

	id, err := s.FindByEmail(ctx, "ANN@x.com")
	require.NoError(t, err)
	require.NotNil(t, id)
	require.Equal(t, "ann@x.com", id.Email)
	require.Equal(t, "Ann", id.Name)

	id, err = s.FindByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	require.Nil(t, id)
}

func TestSignup_RecordsSurviveReopen(t *testing.T) {
	// Two stores over the same database see the same records.
	db := setupDB(t)
	ctx := context.Background()

	first := New(db, true)
	require.NoError(t, first.Signup(ctx, "Ann", "ann@x.com", "pw1"))

	second := New(db, true)
	require.NoError(t, second.Login(ctx, "ann@x.com", "pw1"))
}

func TestStoredFormat(t *testing.T) {
	// The record set is a JSON array under cm_users_v1 with the legacy field
	// names.
	db := setupDB(t)
	s := New(db, true)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, "Ann", "ann@x.com", "pw1"))

	raw, err := storage.NewSQLiteRepository(db).Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"name":"Ann"`)
	require.Contains(t, string(raw), `"email":"ann@x.com"`)
	require.Contains(t, string(raw), `"passwordHash":"`+HashPassword("pw1")+`"`)
}
