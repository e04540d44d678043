package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SubmitFeedback(ctx context.Context) error
	FeedbackHistory(ctx context.Context) error
	ClearFeedbackHistory(ctx context.Context) error
	Menu(ctx context.Context) error
	AddToCart(ctx context.Context) error
	ShowCart(ctx context.Context) error
	ChangeQuantity(ctx context.Context) error
	RemoveFromCart(ctx context.Context) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Which commands are offered depends only on whether a session is active.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lavka> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: menu, add, cart, qty, remove, clearcart, checkout, profile, edit, feedback, history, clearhistory, logout, exit")
			} else {
				printlnFn("Available commands: menu, add, cart, qty, remove, clearcart, checkout, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "feedback":
			_ = a.SubmitFeedback(ctx)

		case "history":
			_ = a.FeedbackHistory(ctx)

		case "clearhistory":
			_ = a.ClearFeedbackHistory(ctx)

		case "m", "menu":
			_ = a.Menu(ctx)

		case "add":
			_ = a.AddToCart(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "qty":
			_ = a.ChangeQuantity(ctx)

		case "remove":
			_ = a.RemoveFromCart(ctx)

		case "clearcart":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
