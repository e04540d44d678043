package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkenzhe/lavka/internal/common"
	"github.com/dkenzhe/lavka/internal/config"
	"github.com/dkenzhe/lavka/internal/logging"
	"github.com/dkenzhe/lavka/internal/simulate"
	"github.com/dkenzhe/lavka/internal/storage"
)

// stubInput replaces the interactive prompt seams with queued answers and
// captures everything the screens print.
type stubInput struct {
	answers   []string
	passwords []string
	confirm   bool
	printed   []string
}

func (s *stubInput) install(t *testing.T) {
	t.Helper()

	origText, origPass, origConfirm, origPrint := getSimpleText, getPassword, getConfirm, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, getConfirm, printlnFn = origText, origPass, origConfirm, origPrint
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(s.answers) == 0 {
			return "", io.EOF
		}
		answer := s.answers[0]
		s.answers = s.answers[1:]
		return answer, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if len(s.passwords) == 0 {
			return "", io.EOF
		}
		pw := s.passwords[0]
		s.passwords = s.passwords[1:]
		return pw, nil
	}
	getConfirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return s.confirm, nil
	}
	printlnFn = func(args ...any) (int, error) {
		s.printed = append(s.printed, fmt.Sprintln(args...))
		return 0, nil
	}
}

func (s *stubInput) output() string {
	return strings.Join(s.printed, "")
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{DatabasePath: ":memory:", NetworkDelay: time.Millisecond}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewApp(cfg, storage.NewMemory(), log)
}

func TestApp_RegisterLoginCheckoutFlow(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	in := &stubInput{
		answers:   []string{"Aruzhan Dyussenova", "aruzhan@example.com", "+7 (701) 123-45-67"},
		passwords: []string{"Passw0rd", "Passw0rd"},
	}
	in.install(t)

	require.NoError(t, app.Register(ctx))
	assert.Contains(t, in.output(), "Account created")
	assert.False(t, app.isLoggedIn(ctx), "signup must not start a session")

	in.answers = []string{"aruzhan@example.com"}
	in.passwords = []string{"Passw0rd"}
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn(ctx))
	assert.Contains(t, app.status(ctx), "Aruzhan")

	in.answers = []string{"Burger"}
	require.NoError(t, app.AddToCart(ctx))
	assert.Contains(t, app.status(ctx), "cart: 1")

	require.NoError(t, app.Checkout(ctx))
	assert.Contains(t, in.output(), "Order successfully placed")
	assert.NotContains(t, app.status(ctx), "cart:")
}

func TestApp_RegisterRejectsBadForm(t *testing.T) {
	app := newTestApp(t)

	in := &stubInput{
		answers:   []string{"A", "not-an-email", "12345"},
		passwords: []string{"short", "other"},
	}
	in.install(t)

	err := app.Register(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)

	out := in.output()
	assert.Contains(t, out, "fullName:")
	assert.Contains(t, out, "email:")
	assert.Contains(t, out, "password:")
	assert.Contains(t, out, "confirmPassword:")
	assert.Contains(t, out, "phone:")
}

func TestApp_LoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	in := &stubInput{
		answers:   []string{"Aruzhan Dyussenova", "aruzhan@example.com", ""},
		passwords: []string{"Passw0rd", "Passw0rd"},
	}
	in.install(t)
	require.NoError(t, app.Register(ctx))

	in.answers = []string{"aruzhan@example.com"}
	in.passwords = []string{"wrong"}
	err := app.Login(ctx)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Contains(t, in.output(), "Invalid email or password")
	assert.False(t, app.isLoggedIn(ctx))
}

func TestApp_CancelledContextSkipsSignup(t *testing.T) {
	app := newTestApp(t)
	// long delay so cancellation always wins the race with the timer
	app.sched = simulate.NewScheduler(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := &stubInput{
		answers:   []string{"Aruzhan Dyussenova", "aruzhan@example.com", ""},
		passwords: []string{"Passw0rd", "Passw0rd"},
	}
	in.install(t)

	_ = app.Register(ctx)
	assert.Contains(t, in.output(), "Signup cancelled")

	in.answers = []string{"aruzhan@example.com"}
	in.passwords = []string{"Passw0rd"}
	err := app.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidCredentials, "no account may exist after a cancelled signup")
}

func TestApp_CheckoutRequiresLogin(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	in := &stubInput{answers: []string{"Burger"}}
	in.install(t)
	require.NoError(t, app.AddToCart(ctx))

	err := app.Checkout(ctx)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Contains(t, in.output(), "Please login")
}

func TestApp_LogoutKeepsCart(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	in := &stubInput{
		answers:   []string{"Aruzhan Dyussenova", "aruzhan@example.com", ""},
		passwords: []string{"Passw0rd", "Passw0rd"},
		confirm:   true,
	}
	in.install(t)
	require.NoError(t, app.Register(ctx))

	in.answers = []string{"aruzhan@example.com"}
	in.passwords = []string{"Passw0rd"}
	require.NoError(t, app.Login(ctx))

	in.answers = []string{"Burger"}
	require.NoError(t, app.AddToCart(ctx))

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn(ctx))
	assert.Contains(t, app.status(ctx), "cart: 1")
}
