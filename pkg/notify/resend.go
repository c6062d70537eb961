package notify

import (
	"context"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends mail through the Resend transactional email API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender builds a sender for apiKey. An empty baseURL keeps the
// client's default API host.
func NewResendSender(apiKey, from, baseURL string) (*ResendSender, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parse RESEND_BASE_URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}

	return &ResendSender{client: client, from: from}, nil
}

func (s *ResendSender) Send(ctx context.Context, to string, msg Message) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("resend send email: %w", err)
	}
	return nil
}
