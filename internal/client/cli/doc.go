// Package cli implements the interactive CareMate shell.
//
// The shell is a plain read-eval-print loop over stdin. Which commands are
// available depends on the gating state: a fresh install walks through
// onboarding, consent, and login before the health commands unlock. A
// background watcher probes the backend and flips the shell between online
// and offline mode; every health command keeps working offline through the
// local fallbacks in the services package.
package cli
