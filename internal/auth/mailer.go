package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// ResendMailer delivers login links via the Resend API
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// SendLoginLink mails a single-use admin login link
func (m *ResendMailer) SendLoginLink(ctx context.Context, to, link string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "Your dashboard sign-in link",
		Html: fmt.Sprintf(
			`<p>Click to sign in to the family dashboard:</p><p><a href="%s">Sign in</a></p><p>The link expires shortly and can be used once.</p>`,
			link,
		),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		slog.Error("login link send failed", "to", to, "error", err)
		return err
	}
	slog.Info("login link sent", "to", to, "message_id", sent.Id)
	return nil
}
