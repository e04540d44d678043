package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dkenzhe/lavka/internal/common"
	"github.com/dkenzhe/lavka/internal/users"
	"github.com/dkenzhe/lavka/internal/validate"
)

// Profile renders the account screen. The session only tells us who is
// logged in; the full record is re-read from the user store.
func (a *App) Profile(ctx context.Context) error {
	current, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		printlnFn("Please log in to view your profile")
		return common.ErrNotAuthenticated
	}

	user, err := a.users.GetByID(ctx, current.UserID)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("[%s] %s", initials(user.FullName), user.FullName))
	printlnFn("Email:", user.Email)
	phone := user.Phone
	if phone == "" {
		phone = "No phone number"
	}
	printlnFn("Phone:", phone)
	printlnFn("Member since", formatDate(user.CreatedAt))
	printlnFn("Visits:", user.Visits)
	printlnFn("Feedback messages:", len(user.Feedback))
	return nil
}

// EditProfile prompts for a new name and phone and saves them. The session
// snapshot is refreshed by the store, so the prompt shows the new name right
// away.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		printlnFn("Please log in first")
		return common.ErrNotAuthenticated
	}

	name, err := getSimpleText(a.reader, "New name", os.Stdout)
	if err != nil {
		return err
	}
	if !validate.FullName(name) {
		printlnFn("fullName: name must be at least 2 characters long")
		return fmt.Errorf("%w: fullName", common.ErrValidation)
	}

	phone, err := getSimpleText(a.reader, "New phone (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if !validate.Phone(phone) {
		printlnFn("phone: please enter a valid phone number")
		return fmt.Errorf("%w: phone", common.ErrValidation)
	}

	if err := a.users.UpdateProfile(ctx, current.UserID, name, phone); err != nil {
		return err
	}

	printlnFn("Profile updated successfully!")
	return nil
}

// SubmitFeedback is the contact form: subject from the closed topic set
// (empty allowed), message text, appended to the logged-in user's history.
func (a *App) SubmitFeedback(ctx context.Context) error {
	current, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		printlnFn("Please log in first")
		return common.ErrNotAuthenticated
	}

	printlnFn("Subjects:", users.Subjects)
	subject, err := getSimpleText(a.reader, "Subject (optional)", os.Stdout)
	if err != nil {
		return err
	}
	message, err := getSimpleText(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}
	if message == "" {
		printlnFn("message: please enter a message")
		return fmt.Errorf("%w: message", common.ErrValidation)
	}

	fb := users.Feedback{
		Subject: subject,
		Message: message,
		Name:    current.FullName,
		Date:    time.Now(),
	}
	if err := a.users.AppendFeedback(ctx, current.UserID, fb); err != nil {
		return err
	}

	printlnFn("Thank you for your feedback!")
	return nil
}

// FeedbackHistory lists the user's messages, newest first, with optional
// subject filter and free-text search.
func (a *App) FeedbackHistory(ctx context.Context) error {
	current, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		printlnFn("Please log in first")
		return common.ErrNotAuthenticated
	}

	subject, err := getSimpleText(a.reader, "Filter by subject (optional)", os.Stdout)
	if err != nil {
		return err
	}
	search, err := getSimpleText(a.reader, "Search (optional)", os.Stdout)
	if err != nil {
		return err
	}

	history, err := a.users.FilterFeedback(ctx, current.UserID, subject, search)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		printlnFn("No feedback yet")
		return nil
	}
	for _, fb := range history {
		subj := fb.Subject
		if subj == "" {
			subj = "General Inquiry"
		}
		printlnFn(fmt.Sprintf("%s (%s at %s)", subj, formatDate(fb.Date), formatTime(fb.Date)))
		printlnFn(" ", fb.Message)
		printlnFn("  From:", fb.Name)
	}
	return nil
}

// ClearFeedbackHistory deletes the whole history after confirmation.
func (a *App) ClearFeedbackHistory(ctx context.Context) error {
	current, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		printlnFn("Please log in first")
		return common.ErrNotAuthenticated
	}

	ok, err := getConfirm(a.reader, "Delete all feedback history? This action cannot be undone.", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.users.ClearFeedback(ctx, current.UserID); err != nil {
		return err
	}
	printlnFn("Feedback history cleared successfully!")
	return nil
}
