// Package session holds the process-wide gating state of the CareMate
// client: the onboarding/consent flags and the authenticated user. It decides
// which top-level flow (auth or main app) the shell presents.
//
// The in-memory state is authoritative for the UI. Flag persistence is
// best-effort: the durable write runs asynchronously and its failure is
// logged, never surfaced. The durable flags win over memory only during
// startup reconciliation, and only in the false-to-true direction.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/caremate-ai/caremate/internal/client/credstore"
	"github.com/caremate-ai/caremate/internal/logging"
)

// State is the derived gating state. The progression is strictly linear;
// only Reset moves backwards.
type State int

const (
	StateNeedsOnboarding State = iota
	StateNeedsConsent
	StateNeedsLogin
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateNeedsOnboarding:
		return "needs-onboarding"
	case StateNeedsConsent:
		return "needs-consent"
	case StateNeedsLogin:
		return "needs-login"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DeriveState computes the gating state from its three inputs. Onboarding is
// checked first, so consentAccepted=true with onboardingComplete=false still
// resolves to StateNeedsOnboarding.
func DeriveState(onboardingComplete, consentAccepted, loggedIn bool) State {
	switch {
	case !onboardingComplete:
		return StateNeedsOnboarding
	case !consentAccepted:
		return StateNeedsConsent
	case !loggedIn:
		return StateNeedsLogin
	default:
		return StateAuthenticated
	}
}

// FlagStore is the durable side of the gating flags.
type FlagStore interface {
	OnboardingComplete(ctx context.Context) (bool, error)
	SetOnboardingComplete(ctx context.Context, val bool) error
	ConsentAccepted(ctx context.Context) (bool, error)
	SetConsentAccepted(ctx context.Context, val bool) error
}

// UserSource answers identity questions. The credential store satisfies it.
type UserSource interface {
	IsLoggedIn(ctx context.Context) (bool, error)
	CurrentUser(ctx context.Context) (*credstore.Identity, error)
}

// Session is the gating state machine. Construct with New and inject where
// gating decisions are needed; there is no package-level singleton.
type Session struct {
	flags FlagStore
	users UserSource
	log   logging.Logger

	persistTimeout time.Duration
	wg             sync.WaitGroup

	mu                 sync.Mutex
	onboardingComplete bool
	consentAccepted    bool
	currentUser        *credstore.Identity
}

func New(flags FlagStore, users UserSource, log logging.Logger) *Session {
	return &Session{
		flags:          flags,
		users:          users,
		log:            log,
		persistTimeout: 5 * time.Second,
	}
}

// State derives the current gating state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeriveState(s.onboardingComplete, s.consentAccepted, s.currentUser != nil)
}

// OnboardingComplete reports the in-memory onboarding flag.
func (s *Session) OnboardingComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboardingComplete
}

// ConsentAccepted reports the in-memory consent flag.
func (s *Session) ConsentAccepted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consentAccepted
}

// CurrentUser returns the authenticated identity, or nil.
func (s *Session) CurrentUser() *credstore.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// CompleteOnboarding advances the onboarding flag. The in-memory flag is set
// immediately; the durable write is best-effort.
func (s *Session) CompleteOnboarding() {
	s.mu.Lock()
	s.onboardingComplete = true
	s.mu.Unlock()

	s.bestEffort("persist onboarding flag", func(ctx context.Context) error {
		return s.flags.SetOnboardingComplete(ctx, true)
	})
}

// AcceptConsent advances the consent flag, same pattern as onboarding.
func (s *Session) AcceptConsent() {
	s.mu.Lock()
	s.consentAccepted = true
	s.mu.Unlock()

	s.bestEffort("persist consent flag", func(ctx context.Context) error {
		return s.flags.SetConsentAccepted(ctx, true)
	})
}

// Authenticate records the identity of a user the credential store just
// logged in. Durability lives in the credential store's session marker; this
// is an in-memory transition only.
func (s *Session) Authenticate(u *credstore.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.currentUser = nil
		return
	}
	copied := *u
	s.currentUser = &copied
}

// Deauthenticate clears the in-memory user. Pair with credstore.Logout.
func (s *Session) Deauthenticate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// Reset returns the machine to its initial state and best-effort clears both
// durable flags.
func (s *Session) Reset() {
	s.mu.Lock()
	s.onboardingComplete = false
	s.consentAccepted = false
	s.currentUser = nil
	s.mu.Unlock()

	s.bestEffort("clear gating flags", func(ctx context.Context) error {
		if err := s.flags.SetOnboardingComplete(ctx, false); err != nil {
			return err
		}
		return s.flags.SetConsentAccepted(ctx, false)
	})
}

// Reconcile rebuilds the in-memory state from durable storage. It must run
// once per process start, before the first gating decision.
//
// A durable true lifts an in-memory false, never the reverse: a flag set
// during this session is not rolled back by a stale durable read. The user
// is rebuilt from the session marker only when both flags end up true.
func (s *Session) Reconcile(ctx context.Context) error {
	onboarding, err := s.flags.OnboardingComplete(ctx)
	if err != nil {
		return fmt.Errorf("failed to read onboarding flag: %w", err)
	}
	consent, err := s.flags.ConsentAccepted(ctx)
	if err != nil {
		return fmt.Errorf("failed to read consent flag: %w", err)
	}

	s.mu.Lock()
	if onboarding {
		s.onboardingComplete = true
	}
	if consent {
		s.consentAccepted = true
	}
	bothSet := s.onboardingComplete && s.consentAccepted
	s.mu.Unlock()

	if !bothSet {
		return nil
	}

	loggedIn, err := s.users.IsLoggedIn(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session marker: %w", err)
	}
	if !loggedIn {
		return nil
	}

	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve current user: %w", err)
	}

	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()
	return nil
}

// Flush waits for pending best-effort writes. Used by shutdown and tests.
func (s *Session) Flush() {
	s.wg.Wait()
}

// bestEffort runs a durable write on its own goroutine. The in-memory state
// has already advanced by the time this is called; a failed write is logged
// at Warn and otherwise dropped. This is the accepted risk described in the
// package comment.
func (s *Session) bestEffort(what string, fn func(ctx context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.log.Warn(ctx, "best-effort persistence failed", "op", what, "error", err)
		}
	}()
}
