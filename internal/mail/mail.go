// Package mail delivers contact form submissions by email.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// Message is a rendered email ready for delivery.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers a Message and returns the provider's message ID.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ResendSender sends through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResend returns a ResendSender, or nil when apiKey is empty.
func NewResend(apiKey string) *ResendSender {
	if apiKey == "" {
		slog.Warn("RESEND_API_KEY not set, contact email delivery disabled")
		return nil
	}
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return resp.Id, nil
}

// Submission is the visitor-supplied part of a contact email.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f4f4f5;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;">
    <div style="background:linear-gradient(135deg,#ea580c,#f97316);padding:24px;">
      <h1 style="margin:0;color:#ffffff;font-size:22px;">New Contact Form Submission</h1>
    </div>
    <table style="width:100%;border-collapse:collapse;padding:24px;">
      <tr><td style="padding:12px 24px;font-weight:bold;width:120px;">Name</td><td style="padding:12px 24px;">{{.Name}}</td></tr>
      <tr><td style="padding:12px 24px;font-weight:bold;">Email</td><td style="padding:12px 24px;"><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
      {{- if .Phone}}
      <tr><td style="padding:12px 24px;font-weight:bold;">Phone</td><td style="padding:12px 24px;"><a href="tel:{{.Phone}}">{{.Phone}}</a></td></tr>
      {{- end}}
      {{- if .Company}}
      <tr><td style="padding:12px 24px;font-weight:bold;">Company</td><td style="padding:12px 24px;">{{.Company}}</td></tr>
      {{- end}}
      <tr><td style="padding:12px 24px;font-weight:bold;vertical-align:top;">Message</td><td style="padding:12px 24px;white-space:pre-wrap;">{{.Message}}</td></tr>
    </table>
    <div style="padding:16px 24px;background:#fafafa;color:#71717a;font-size:12px;">
      This email was sent from the contact form at technogroop.com
    </div>
  </div>
</body>
</html>
`))

// ContactMessage renders the notification email for a submission. The
// visitor's address becomes the reply-to so staff can answer directly.
func ContactMessage(from string, to []string, s Submission) (Message, error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, s); err != nil {
		return Message{}, fmt.Errorf("render contact email: %w", err)
	}
	return Message{
		From:    from,
		To:      to,
		ReplyTo: s.Email,
		Subject: "New Contact Form Submission from " + s.Name,
		HTML:    buf.String(),
	}, nil
}
