package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/caremate-ai/caremate/internal/client/config"
	"github.com/caremate-ai/caremate/internal/client/credstore"
	"github.com/caremate-ai/caremate/internal/client/session"
	"github.com/caremate-ai/caremate/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptInput replaces the interactive input seams with scripted answers.
func scriptInput(t *testing.T, texts []string, passwords []string) {
	t.Helper()

	origText := getSimpleText
	origPass := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPass
	})

	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if ti >= len(texts) {
			return "", fmt.Errorf("unexpected text prompt")
		}
		v := texts[ti]
		ti++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		if pi >= len(passwords) {
			return nil, fmt.Errorf("unexpected password prompt")
		}
		v := []byte(passwords[pi])
		pi++
		return v, nil
	}
}

func newTestApp(t *testing.T, name string) *App {
	t.Helper()
	muteOutput(t)

	cfg := &config.Config{
		EndpointURL:         "http://127.0.0.1:1", // nothing listens here
		RequestTimeout:      200 * time.Millisecond,
		HealthCheckInterval: time.Hour,
		DatabaseDSN:         fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		EnableDemoAccount:   true,
	}

	app, err := NewApp(context.Background(), cfg, logging.NewSlogLogger(slog.Default()))
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func TestApp_GatingProgression(t *testing.T) {
	app := newTestApp(t, "cliprog")
	ctx := context.Background()

	require.Equal(t, session.StateNeedsOnboarding, app.state())

	require.NoError(t, app.Onboard(ctx))
	require.Equal(t, session.StateNeedsConsent, app.state())

	scriptInput(t, []string{"yes"}, nil)
	require.NoError(t, app.Consent(ctx))
	require.Equal(t, session.StateNeedsLogin, app.state())

	scriptInput(t,
		[]string{"Jane Roe", "jane@example.com", "jane@example.com"},
		[]string{"pass-1", "pass-1"},
	)
	require.NoError(t, app.Signup(ctx))
	require.Equal(t, session.StateNeedsLogin, app.state(), "signup does not log in")

	require.NoError(t, app.Login(ctx))
	require.Equal(t, session.StateAuthenticated, app.state())

	user := app.session.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane Roe", user.Name)

	require.NoError(t, app.Logout(ctx))
	assert.Equal(t, session.StateNeedsLogin, app.state())
}

func TestApp_ConsentDeclinedKeepsState(t *testing.T) {
	app := newTestApp(t, "cliconsent")
	ctx := context.Background()

	require.NoError(t, app.Onboard(ctx))

	scriptInput(t, []string{"no"}, nil)
	require.NoError(t, app.Consent(ctx))
	assert.Equal(t, session.StateNeedsConsent, app.state())
}

func TestApp_DemoLogin(t *testing.T) {
	app := newTestApp(t, "clidemo")
	ctx := context.Background()

	require.NoError(t, app.Onboard(ctx))
	scriptInput(t,
		[]string{"yes", credstore.DemoEmail},
		[]string{credstore.DemoPassword},
	)
	require.NoError(t, app.Consent(ctx))
	require.NoError(t, app.Login(ctx))

	require.Equal(t, session.StateAuthenticated, app.state())
	user := app.session.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, credstore.DemoEmail, user.Email)
	assert.Empty(t, user.Name, "demo account has no signup record")
}

func TestApp_ResetReturnsToFreshState(t *testing.T) {
	app := newTestApp(t, "clireset")
	ctx := context.Background()

	require.NoError(t, app.Onboard(ctx))
	scriptInput(t,
		[]string{"yes", credstore.DemoEmail, "yes"},
		[]string{credstore.DemoPassword},
	)
	require.NoError(t, app.Consent(ctx))
	require.NoError(t, app.Login(ctx))
	require.Equal(t, session.StateAuthenticated, app.state())

	require.NoError(t, app.Reset(ctx))
	app.session.Flush()

	assert.Equal(t, session.StateNeedsOnboarding, app.state())
	assert.Nil(t, app.session.CurrentUser())
}
