package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkenzhe/lavka/internal/common"
	"github.com/dkenzhe/lavka/internal/users"
	"github.com/dkenzhe/lavka/internal/validate"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirm = GetConfirm

// Register runs the signup form: prompts for the account fields, validates
// them, then completes the simulated signup request. Field problems are
// reported per field; a taken email is reported as a banner message.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone (optional)", os.Stdout)
	if err != nil {
		return err
	}

	valid := true
	if !validate.FullName(fullName) {
		printlnFn("fullName: name must be at least 2 characters long")
		valid = false
	}
	if !validate.Email(email) {
		printlnFn("email: please enter a valid email address")
		valid = false
	}
	if !validate.Password(password) {
		printlnFn("password: must be at least 8 characters with uppercase, lowercase, and number")
		valid = false
	}
	if password != confirm {
		printlnFn("confirmPassword: passwords do not match")
		valid = false
	}
	if !validate.Phone(phone) {
		printlnFn("phone: please enter a valid phone number")
		valid = false
	}
	if !valid {
		return fmt.Errorf("%w: signup form", common.ErrValidation)
	}

	printlnFn("Creating your account...")

	var regErr error
	task := a.sched.Schedule(ctx, func() {
		_, regErr = a.users.Register(ctx, users.Candidate{
			FullName: fullName,
			Email:    email,
			Password: password,
			Phone:    phone,
		})
	})
	if !task.Wait() {
		printlnFn("Signup cancelled")
		return ctx.Err()
	}

	if regErr != nil {
		if errors.Is(regErr, common.ErrEmailTaken) {
			printlnFn("This email is already registered")
		} else {
			printlnFn("Signup failed:", regErr.Error())
		}
		return regErr
	}

	printlnFn("Account created! You can now log in.")
	return nil
}

// Login prompts for credentials, completes the simulated request and starts
// a session on success. A mismatch is reported as one banner message, never
// hinting which field was wrong.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	if !validate.Email(email) {
		printlnFn("email: please enter a valid email address")
		return fmt.Errorf("%w: email", common.ErrValidation)
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	if password == "" {
		printlnFn("password: please enter your password")
		return fmt.Errorf("%w: password", common.ErrValidation)
	}

	printlnFn("Logging in...")

	var (
		user    *users.User
		authErr error
	)
	task := a.sched.Schedule(ctx, func() {
		user, authErr = a.users.Authenticate(ctx, email, password)
	})
	if !task.Wait() {
		printlnFn("Login cancelled")
		return ctx.Err()
	}

	if authErr != nil {
		if errors.Is(authErr, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password")
		} else {
			printlnFn("Login failed:", authErr.Error())
		}
		return authErr
	}

	if err := a.sessions.Start(ctx, user.ID, user.Email, user.FullName); err != nil {
		return err
	}

	printlnFn("Welcome back,", user.FullName+"!")
	return nil
}

// Logout asks for confirmation and ends the session. The cart is left
// alone: it belongs to the machine, not the account.
func (a *App) Logout(ctx context.Context) error {
	ok, err := getConfirm(a.reader, "Are you sure you want to logout?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.sessions.End(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}
