// Package contact validates and delivers contact form submissions.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"technogroop/internal/mail"
	"technogroop/internal/turnstile"
)

// Code is a machine-readable failure category.
type Code string

const (
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeInvalidEmail       Code = "INVALID_EMAIL"
	CodeTooLong            Code = "TOO_LONG"
	CodeVerificationNeeded Code = "VERIFICATION_REQUIRED"
	CodeVerificationFailed Code = "VERIFICATION_FAILED"
	CodeDelivery           Code = "DELIVERY_FAILED"
)

// Error is a contact submission failure. Message is safe to show to the
// visitor.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Client reports whether the failure was caused by the submitter rather
// than by a downstream service.
func (e *Error) Client() bool {
	return e.Code != CodeDelivery
}

// CodeOf returns the Code carried by err, or "" when err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Field limits, in characters.
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxPhoneLen   = 50
	maxCompanyLen = 200
	maxMessageLen = 5_000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Request is the JSON body of a contact submission.
type Request struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Company        string `json:"company,omitempty"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstileToken"`
}

// Normalize trims surrounding whitespace from every field.
func (r *Request) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Company = strings.TrimSpace(r.Company)
	r.Message = strings.TrimSpace(r.Message)
	r.TurnstileToken = strings.TrimSpace(r.TurnstileToken)
}

// Validate checks the visitor-supplied fields. The bot-check token is
// checked separately by Service.Submit.
func (r Request) Validate() error {
	if r.Name == "" || r.Email == "" || r.Message == "" {
		return &Error{Code: CodeInvalidInput, Message: "Name, email, and message are required"}
	}
	if utf8.RuneCountInString(r.Email) > maxEmailLen || !emailPattern.MatchString(r.Email) {
		return &Error{Code: CodeInvalidEmail, Message: "Invalid email address"}
	}
	limits := []struct {
		field string
		value string
		max   int
	}{
		{"Name", r.Name, maxNameLen},
		{"Phone", r.Phone, maxPhoneLen},
		{"Company", r.Company, maxCompanyLen},
		{"Message", r.Message, maxMessageLen},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return &Error{Code: CodeTooLong, Message: fmt.Sprintf("%s is too long (max %d characters)", l.field, l.max)}
		}
	}
	return nil
}

// Service runs a submission through validation, the bot-check and email
// delivery.
type Service struct {
	verifier turnstile.Verifier
	sender   mail.Sender
	from     string
	to       []string
}

// NewService creates a Service. A nil sender makes every otherwise valid
// submission fail with CodeDelivery.
func NewService(verifier turnstile.Verifier, sender mail.Sender, from string, to []string) *Service {
	return &Service{verifier: verifier, sender: sender, from: from, to: to}
}

// Submit validates req, verifies its bot-check token and sends the
// notification email. It returns the provider's message ID.
func (s *Service) Submit(ctx context.Context, req Request, remoteIP string) (string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return "", err
	}

	if req.TurnstileToken == "" {
		return "", &Error{Code: CodeVerificationNeeded, Message: "Security verification required"}
	}
	ok, err := s.verifier.Verify(ctx, req.TurnstileToken, remoteIP)
	if err != nil {
		slog.Error("turnstile verification error", "error", err)
	}
	if !ok {
		return "", &Error{Code: CodeVerificationFailed, Message: "Security verification failed", Cause: err}
	}

	if s.sender == nil {
		return "", &Error{Code: CodeDelivery, Message: "Failed to send email", Cause: errors.New("no mail sender configured")}
	}
	msg, err := mail.ContactMessage(s.from, s.to, mail.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		return "", &Error{Code: CodeDelivery, Message: "Failed to send email", Cause: err}
	}
	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		return "", &Error{Code: CodeDelivery, Message: "Failed to send email", Cause: err}
	}

	slog.Info("contact submission sent", "id", id)
	return id, nil
}
