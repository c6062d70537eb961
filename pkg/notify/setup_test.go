package notify

import (
	"context"
	"testing"

	"cinerank-auth/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Providers(t *testing.T) {
	config := &utils.Config{}
	d, err := New(context.Background(), config)
	require.NoError(t, err)
	assert.Nil(t, d.Email)
	assert.Nil(t, d.SMS)

	config.Email = utils.EmailConfig{Provider: "resend", ResendAPIKey: "re_key", From: "a@b.c", ResendBaseURL: "http://localhost:8025/"}
	d, err = New(context.Background(), config)
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, d.Email)

	config.Email = utils.EmailConfig{Provider: "smtp", SMTPHost: "localhost", SMTPPort: 1025}
	d, err = New(context.Background(), config)
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, d.Email)
}

func TestNew_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		config utils.Config
	}{
		{name: "resend without key", config: utils.Config{Email: utils.EmailConfig{Provider: "resend"}}},
		{name: "smtp without host", config: utils.Config{Email: utils.EmailConfig{Provider: "smtp"}}},
		{name: "unknown email", config: utils.Config{Email: utils.EmailConfig{Provider: "pigeon"}}},
		{name: "unknown sms", config: utils.Config{SMS: utils.SMSConfig{Provider: "fax"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(context.Background(), &tt.config)
			assert.Error(t, err)
		})
	}
}
