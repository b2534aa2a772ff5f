// Package credstore implements durable identity management for the CareMate
// client: signup, login, logout, and lookups over the local key-value store.
//
// Contract:
//   - At most one user record exists per case-insensitive email.
//   - The session marker, when present, holds the email of the authenticated
//     user; it may point at the demo account, which has no user record.
//   - Records are never mutated in place; there is no profile-edit operation.
//
// Storage failures wrap the underlying error and propagate to the caller.
package credstore

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/caremate-ai/caremate/internal/client/storage"
	"github.com/caremate-ai/caremate/internal/dbx"
)

// Built-in demo account. Login with these credentials succeeds without a
// signup record and without a hash check. The bypass lives in its own branch
// of Login so non-demo builds can switch it off via configuration.
const (
	DemoEmail    = "demo@caremate.ai"
	DemoPassword = "demo123"
)

// User is the durable record shape. The JSON field names are part of the
// stored format and must not change.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Identity is the outward-facing view of an account. The password hash never
// leaves the store.
type Identity struct {
	Email string
	Name  string
}

// Store is the credential store over the local SQLite database.
type Store struct {
	db        *sql.DB
	allowDemo bool
}

// New constructs a Store. allowDemo controls the built-in demo credential.
func New(db *sql.DB, allowDemo bool) *Store {
	return &Store{db: db, allowDemo: allowDemo}
}

func (s *Store) kvRepo() storage.Repository {
	return storage.NewSQLiteRepository(s.db)
}

// Signup validates the fields, checks for a duplicate email, and appends a
// new user record. The read-check-append-write sequence runs inside one
// transaction so concurrent signups cannot both pass the duplicate check.
func (s *Store) Signup(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return ErrValidation
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := storage.NewSQLiteRepository(tx)

		users, err := loadUsers(ctx, kv)
		if err != nil {
			return err
		}
		for _, u := range users {
			if strings.EqualFold(u.Email, email) {
				return ErrDuplicateAccount
			}
		}

		users = append(users, User{Name: name, Email: email, PasswordHash: HashPassword(password)})

		raw, err := json.Marshal(users)
		if err != nil {
			return fmt.Errorf("failed to encode user records: %w", err)
		}
		return kv.Set(ctx, storage.KeyUsers, raw)
	})
}

// Login verifies the credentials and sets the session marker on success.
// Every mismatch returns ErrInvalidCredentials; the caller cannot tell
// whether the email or the password was wrong.
//
// There is no lockout or attempt throttling: any number of attempts is
// permitted. Current behavior, noted in the tests.
func (s *Store) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrValidation
	}

	// Demo bypass: fixed credentials accepted regardless of the record set.
	if s.allowDemo && isDemoCredential(email, password) {
		return s.setSessionMarker(ctx, email)
	}

	users, err := loadUsers(ctx, s.kvRepo())
	if err != nil {
		return err
	}

	user, ok := findRecord(users, email)
	if !ok {
		return ErrInvalidCredentials
	}

	candidate := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(user.PasswordHash)) == 0 {
		return ErrInvalidCredentials
	}

	return s.setSessionMarker(ctx, email)
}

// Logout clears the session marker. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	return s.kvRepo().Delete(ctx, storage.KeySessionMarker)
}

// IsLoggedIn reports whether a session marker is present.
func (s *Store) IsLoggedIn(ctx context.Context) (bool, error) {
	marker, err := s.kvRepo().Get(ctx, storage.KeySessionMarker)
	if err != nil {
		return false, err
	}
	return len(marker) > 0, nil
}

// CurrentUser resolves the session marker to an identity. When the marker
// points at an email without a matching record (the demo account, or a record
// removed out-of-band) the identity carries the email only. Returns nil when
// nobody is logged in.
func (s *Store) CurrentUser(ctx context.Context) (*Identity, error) {
	kv := s.kvRepo()

	marker, err := kv.Get(ctx, storage.KeySessionMarker)
	if err != nil {
		return nil, err
	}
	if len(marker) == 0 {
		return nil, nil
	}

	email := string(marker)
	users, err := loadUsers(ctx, kv)
	if err != nil {
		return nil, err
	}
	if user, ok := findRecord(users, email); ok {
		return &Identity{Email: user.Email, Name: user.Name}, nil
	}
	return &Identity{Email: email}, nil
}

// FindByEmail looks up a record case-insensitively. Returns nil when there is
// no match.
func (s *Store) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	users, err := loadUsers(ctx, s.kvRepo())
	if err != nil {
		return nil, err
	}
	if user, ok := findRecord(users, email); ok {
		return &Identity{Email: user.Email, Name: user.Name}, nil
	}
	return nil, nil
}

func (s *Store) setSessionMarker(ctx context.Context, email string) error {
	return s.kvRepo().Set(ctx, storage.KeySessionMarker, []byte(email))
}

func isDemoCredential(email, password string) bool {
	return strings.EqualFold(email, DemoEmail) &&
		subtle.ConstantTimeCompare([]byte(password), []byte(DemoPassword)) == 1
}

func loadUsers(ctx context.Context, kv storage.Repository) ([]User, error) {
	raw, err := kv.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user records: %w", err)
	}
	return users, nil
}

func findRecord(users []User, email string) (User, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}
