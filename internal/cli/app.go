// Package cli is the interactive storefront UI. It owns prompts, rendering
// and notifications; every decision about data goes through the stores.
package cli

import (
	"bufio"
	"context"
	"os"
	"strconv"

	"github.com/dkenzhe/lavka/internal/cart"
	"github.com/dkenzhe/lavka/internal/config"
	"github.com/dkenzhe/lavka/internal/logging"
	"github.com/dkenzhe/lavka/internal/session"
	"github.com/dkenzhe/lavka/internal/simulate"
	"github.com/dkenzhe/lavka/internal/storage"
	"github.com/dkenzhe/lavka/internal/users"
)

type App struct {
	config   *config.Config
	users    *users.Service
	sessions *session.Manager
	cart     *cart.Store
	sched    *simulate.Scheduler
	log      logging.Logger
	reader   *bufio.Reader
}

// NewApp wires the stores over the given backend. All three slots live in
// the same backend.
func NewApp(c *config.Config, backend storage.Backend, log logging.Logger) *App {
	sessions := session.NewManager(session.NewKVRepository(backend))
	userService := users.NewService(users.NewKVRepository(backend), sessions, log)
	cartStore := cart.NewStore(cart.NewKVRepository(backend), sessions, log)

	return &App{
		config:   c,
		users:    userService,
		sessions: sessions,
		cart:     cartStore,
		sched:    simulate.NewScheduler(c.NetworkDelay),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.status(ctx) }, scanner)
}

// isLoggedIn consults the persisted session; its presence is the only login
// signal any screen uses.
func (a *App) isLoggedIn(ctx context.Context) bool {
	current, err := a.sessions.Current(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read session", "error", err)
		return false
	}
	return current != nil
}

// status builds the REPL prompt: the visitor's name and the cart badge.
func (a *App) status(ctx context.Context) string {
	name := "guest"
	if current, err := a.sessions.Current(ctx); err == nil && current != nil {
		name = current.FullName
	}

	totals, err := a.cart.Totals(ctx)
	if err != nil {
		return name
	}
	if totals.Units == 0 {
		return name
	}
	return name + " | cart: " + strconv.Itoa(totals.Units)
}
