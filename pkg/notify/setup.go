package notify

import (
	"context"
	"fmt"

	"cinerank-auth/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// New builds the dispatcher described by config. Unknown provider names are
// rejected so a typo does not silently disable delivery.
func New(ctx context.Context, config *utils.Config) (*Dispatcher, error) {
	d := &Dispatcher{}

	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg != nil {
			return *awsCfg, nil
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.AWS.Region))
		if err != nil {
			return aws.Config{}, fmt.Errorf("load AWS config: %w", err)
		}
		awsCfg = &cfg
		return cfg, nil
	}

	switch config.Email.Provider {
	case "":
	case "resend":
		if config.Email.ResendAPIKey == "" {
			return nil, fmt.Errorf("EMAIL_PROVIDER=resend requires RESEND_API_KEY")
		}
		sender, err := NewResendSender(config.Email.ResendAPIKey, config.Email.From, config.Email.ResendBaseURL)
		if err != nil {
			return nil, err
		}
		d.Email = sender
	case "ses":
		cfg, err := loadAWS()
		if err != nil {
			return nil, err
		}
		client := ses.NewFromConfig(cfg, func(o *ses.Options) {
			if config.AWS.EndpointURL != "" {
				o.BaseEndpoint = aws.String(config.AWS.EndpointURL)
			}
		})
		d.Email = NewSESSender(client, config.Email.From)
	case "smtp":
		if config.Email.SMTPHost == "" {
			return nil, fmt.Errorf("EMAIL_PROVIDER=smtp requires SMTP_HOST")
		}
		d.Email = NewSMTPSender(config.Email.SMTPHost, config.Email.SMTPPort, config.Email.From,
			config.Email.SMTPUser, config.Email.SMTPPassword)
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", config.Email.Provider)
	}

	switch config.SMS.Provider {
	case "":
	case "sns":
		cfg, err := loadAWS()
		if err != nil {
			return nil, err
		}
		client := sns.NewFromConfig(cfg, func(o *sns.Options) {
			if config.AWS.EndpointURL != "" {
				o.BaseEndpoint = aws.String(config.AWS.EndpointURL)
			}
		})
		d.SMS = NewSNSSender(client)
	default:
		return nil, fmt.Errorf("unknown SMS_PROVIDER %q", config.SMS.Provider)
	}

	return d, nil
}
