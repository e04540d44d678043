package users

import "time"

// User is one registered account. Passwords are stored as entered: this is a
// local-only demo store with no real authentication.
type User struct {
	ID        int64      `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	Visits    int        `json:"visits"`
	Feedback  []Feedback `json:"feedback"`
}

// Feedback is one message a user submitted through the contact form. It is
// owned by exactly one user and has no lifecycle of its own.
type Feedback struct {
	Subject string    `json:"subject,omitempty"`
	Message string    `json:"message"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
}

// Subjects is the closed set of topics the contact form offers.
var Subjects = []string{
	"General Inquiry",
	"Reservation",
	"Catering",
	"Complaint",
	"Compliment",
}
