package user

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Mailer delivers account emails.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, link string) error
}

// ConsoleMailer writes emails to a writer instead of sending them. Used in development.
type ConsoleMailer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleMailer creates a ConsoleMailer writing to w.
func NewConsoleMailer(w io.Writer) *ConsoleMailer {
	return &ConsoleMailer{w: w}
}

// SendPasswordReset writes the reset email.
func (m *ConsoleMailer) SendPasswordReset(_ context.Context, to, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := fmt.Fprintf(m.w, "To: %s\nSubject: %s\n\nUse the link below to choose a new password:\n%s\n\n",
		to, PasswordResetSubject, link)
	return err
}
