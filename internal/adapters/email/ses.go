package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"panelrecut/internal/domain"
)

// SESConfig holds configuration for the AWS SES provider.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	FromAddress        string
	FromName           string
	InsecureSkipVerify bool
}

// sesProvider sends rendered notifications directly through AWS SES,
// with no relay process in between.
type sesProvider struct {
	client      *ses.Client
	fromAddress string
	fromName    string
	renderer    domain.EmailContentRenderer
	logger      *slog.Logger
}

// NewSESProvider returns the SES notification provider.
func NewSESProvider(cfg SESConfig, renderer domain.EmailContentRenderer, logger *slog.Logger) domain.NotificationProvider {
	if cfg.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for SES. Use only in development.")
	}
	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: cfg.InsecureSkipVerify,
				MinVersion:         tls.VersionTLS12,
			},
		},
	}
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		),
		HTTPClient: httpClient,
	}
	return &sesProvider{
		client:      ses.NewFromConfig(awsCfg),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		renderer:    renderer,
		logger:      logger,
	}
}

func (p *sesProvider) SendNewRequestNotification(ctx context.Context, req *domain.DamageRequest, recipients domain.EmailRecipients) bool {
	content, err := p.renderer.RenderNewRequest(req)
	if err != nil {
		p.logger.Error("ses provider: render new request content failed", "err", err)
		return false
	}
	return p.SendEmail(ctx, recipients, content)
}

func (p *sesProvider) SendStatusUpdateNotification(ctx context.Context, req *domain.DamageRequest, recipients domain.EmailRecipients) bool {
	content, err := p.renderer.RenderStatusUpdate(req)
	if err != nil {
		p.logger.Error("ses provider: render status update content failed", "err", err)
		return false
	}
	return p.SendEmail(ctx, recipients, content)
}

func (p *sesProvider) SendEmail(ctx context.Context, recipients domain.EmailRecipients, content domain.EmailContent) bool {
	source := p.fromAddress
	if p.fromName != "" {
		source = fmt.Sprintf("%s <%s>", p.fromName, p.fromAddress)
	}
	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses:  recipients.To,
			CcAddresses:  recipients.Cc,
			BccAddresses: recipients.Bcc,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(content.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if content.HTML != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(content.HTML),
			Charset: aws.String("UTF-8"),
		}
	}
	if content.Text != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(content.Text),
			Charset: aws.String("UTF-8"),
		}
	}
	result, err := p.client.SendEmail(ctx, input)
	if err != nil {
		p.logger.Error("ses provider: send failed", "to", recipients.To, "err", err)
		return false
	}
	p.logger.Info("ses provider: email sent", "messageId", aws.ToString(result.MessageId))
	return true
}

// TestConnection verifies the SES credentials by querying the send quota.
func (p *sesProvider) TestConnection(ctx context.Context) domain.ConnectionTestResult {
	quota, err := p.client.GetSendQuota(ctx, &ses.GetSendQuotaInput{})
	if err != nil {
		return domain.ConnectionTestResult{
			Success: false,
			Message: fmt.Sprintf("SES connection failed: %v", err),
		}
	}
	return domain.ConnectionTestResult{
		Success: true,
		Message: "Connected to AWS SES successfully",
		Details: map[string]float64{
			"max24HourSend": quota.Max24HourSend,
			"sentLast24":    quota.SentLast24Hours,
		},
	}
}
