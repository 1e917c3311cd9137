package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/google/uuid"
)

// SESAPI is the part of the SES v2 client the sender needs.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESEmailSender struct {
	client   SESAPI
	from     string
	fromName string
}

// NewEmailSender returns an SES backed sender, or a disabled one when
// fromEmail is empty.
func NewEmailSender(ctx context.Context, region, fromEmail, fromName string) (EmailSender, error) {
	if fromEmail == "" {
		slog.Warn("email sender disabled: SES_FROM_EMAIL not configured")
		return DisabledEmailSender{}, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	slog.Info("email sender enabled", slog.String("from", fromEmail), slog.String("region", region))
	return NewSESEmailSender(sesv2.NewFromConfig(cfg), fromEmail, fromName), nil
}

func NewSESEmailSender(client SESAPI, fromEmail, fromName string) *SESEmailSender {
	return &SESEmailSender{
		client:   client,
		from:     fromEmail,
		fromName: fromName,
	}
}

func (s *SESEmailSender) SendVerificationEmail(ctx context.Context, toEmail, userName, code string) (string, error) {
	from := s.from
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.from)
	}
	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String("Your verification code"),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(verificationText(userName, code)),
						Charset: aws.String("UTF-8"),
					},
					Html: &types.Content{
						Data:    aws.String(verificationHTML(userName, code)),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("sending verification email: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

func verificationText(userName, code string) string {
	return fmt.Sprintf("Hi %s,\n\nYour verification code is %s.\nIt expires soon, so enter it right away.\n\nIf you didn't ask for this code, ignore this email.\n", userName, code)
}

func verificationHTML(userName, code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<p>Hi %s,</p>
	<p>Your verification code is:</p>
	<p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">%s</p>
	<p>It expires soon, so enter it right away.</p>
	<p style="font-size: 12px; color: #666;">If you didn't ask for this code, ignore this email.</p>
</body>
</html>`, userName, code)
}

// DisabledEmailSender only logs. Used when SES is not configured.
type DisabledEmailSender struct{}

func (DisabledEmailSender) SendVerificationEmail(ctx context.Context, toEmail, userName, code string) (string, error) {
	slog.Info("skipping verification email (sender disabled)", slog.String("to", toEmail))
	return "disabled-" + uuid.NewString(), nil
}
