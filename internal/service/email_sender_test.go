package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/limbo/taskstars/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("ses-42")}, nil
}

func TestSESEmailSender(t *testing.T) {
	t.Parallel()
	ses := &fakeSES{}
	sender := service.NewSESEmailSender(ses, "noreply@example.com", "Task Stars")

	id, err := sender.SendVerificationEmail(context.Background(), "parent@example.com", "Alex", "654321")
	require.NoError(t, err)
	assert.Equal(t, "ses-42", id)
	require.NotNil(t, ses.input)
	assert.Equal(t, "Task Stars <noreply@example.com>", aws.ToString(ses.input.FromEmailAddress))
	assert.Equal(t, []string{"parent@example.com"}, ses.input.Destination.ToAddresses)
	text := aws.ToString(ses.input.Content.Simple.Body.Text.Data)
	assert.True(t, strings.Contains(text, "654321"))
	assert.True(t, strings.Contains(text, "Alex"))
	assert.Contains(t, aws.ToString(ses.input.Content.Simple.Body.Html.Data), "654321")
}

func TestSESEmailSenderError(t *testing.T) {
	t.Parallel()
	sender := service.NewSESEmailSender(&fakeSES{err: errors.New("quota")}, "noreply@example.com", "")
	_, err := sender.SendVerificationEmail(context.Background(), "parent@example.com", "Alex", "654321")
	assert.ErrorContains(t, err, "quota")
}

func TestNewEmailSenderDisabled(t *testing.T) {
	t.Parallel()
	sender, err := service.NewEmailSender(context.Background(), "us-east-1", "", "")
	require.NoError(t, err)
	assert.IsType(t, service.DisabledEmailSender{}, sender)
	id, err := sender.SendVerificationEmail(context.Background(), "parent@example.com", "Alex", "654321")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "disabled-"))
}
