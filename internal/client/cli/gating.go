package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/caremate-ai/caremate/internal/client/api"
	"github.com/caremate-ai/caremate/internal/client/session"
)

// Onboard walks the user through the app introduction and marks onboarding
// complete. Re-running it after completion is a no-op.
func (a *App) Onboard(ctx context.Context) error {
	if a.session.OnboardingComplete() {
		printlnFn("Onboarding already completed.")
		return nil
	}

	printlnFn("CareMate checks your health risks, explains what drives them,")
	printlnFn("and connects you with verified doctors. Your data stays on this")
	printlnFn("device unless you choose to share a report.")

	a.session.CompleteOnboarding()
	printlnFn("Onboarding complete. Next: type 'consent'.")
	return nil
}

// Consent shows the consent notice and records acceptance. Declining leaves
// the state unchanged.
func (a *App) Consent(ctx context.Context) error {
	if a.session.State() == session.StateNeedsOnboarding {
		printlnFn("Please finish onboarding first (type 'onboard').")
		return nil
	}
	if a.session.ConsentAccepted() {
		printlnFn("Consent already accepted.")
		return nil
	}

	printlnFn("CareMate provides health information, not medical diagnoses.")
	printlnFn("Predictions are estimates; always consult a clinician for care")
	printlnFn("decisions. Intake data you submit is processed to generate your")
	printlnFn("risk screening.")

	answer, err := getSimpleText(a.reader, "Accept and continue? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") && !strings.EqualFold(answer, "y") {
		printlnFn("Consent declined. You can run 'consent' again anytime.")
		return nil
	}

	a.session.AcceptConsent()
	printlnFn("Consent recorded. Next: type 'signup' or 'login'.")
	return nil
}

// Reset wipes the gating progression and logs the user out, returning the
// shell to the fresh-install state. Asks for confirmation first.
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Reset onboarding, consent, and login? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		printlnFn("Reset cancelled.")
		return nil
	}

	if err := a.creds.Logout(ctx); err != nil {
		return err
	}
	a.session.Reset()
	a.lastIntake = nil
	a.lastPrediction = nil

	printlnFn("State cleared. Type 'onboard' to start over.")
	return nil
}

// Ping probes the backend once and reports reachability.
func (a *App) Ping(ctx context.Context) error {
	err := a.client.Health(ctx)
	if err == nil {
		a.setMode(ModeOnline)
		printlnFn("Backend is reachable.")
		return nil
	}
	if errors.Is(err, api.ErrUnavailable) {
		a.setMode(ModeOffline)
		printlnFn("Backend is unreachable; running in offline mode.")
		return nil
	}
	return err
}
