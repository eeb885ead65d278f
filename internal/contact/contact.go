// Package contact handles storefront contact form submissions.
package contact

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

var (
	ErrMissingField = errors.New("name, email and message are required")
	ErrInvalidEmail = errors.New("email is not valid")
)

// Message is a contact form submission.
// swagger:model ContactMessage
type Message struct {
	Name    string `json:"name"    example:"Ada"`
	Email   string `json:"email"   example:"ada@example.com"`
	Message string `json:"message" example:"Do you deliver on Sundays?"`
}

func (m *Message) normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)
}

func (m Message) Validate() error {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return ErrMissingField
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

type Service struct {
	log *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	return &Service{log: log}
}

// Submit records the message in the log. Nothing is persisted.
func (s *Service) Submit(ctx context.Context, m Message) error {
	m.normalize()
	if err := m.Validate(); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "contact form submission",
		"name", m.Name,
		"email", m.Email,
		"message", m.Message)
	return nil
}
