package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	tests := []struct {
		name       string
		fromName   string
		sesErr     error
		html, text string
		wantSource string
		wantErr    bool
	}{
		{name: "html and text", fromName: "Events", html: "<p>hi</p>", text: "hi", wantSource: "Events <noreply@example.com>"},
		{name: "text only without from name", text: "hi", wantSource: "noreply@example.com"},
		{name: "ses error", text: "hi", sesErr: errors.New("throttled"), wantSource: "noreply@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSES{err: tt.sesErr}
			m := &sesMailer{client: client, fromAddress: "noreply@example.com", fromName: tt.fromName, logger: testLogger()}

			err := m.Send(context.Background(), "alice@example.com", "Subject", tt.html, tt.text)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, client.input)
			assert.Equal(t, tt.wantSource, aws.ToString(client.input.Source))
			assert.Equal(t, []string{"alice@example.com"}, client.input.Destination.ToAddresses)
			assert.Equal(t, tt.html != "", client.input.Message.Body.Html != nil)
			assert.Equal(t, tt.text != "", client.input.Message.Body.Text != nil)
		})
	}
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	require.NoError(t, m.Send(context.Background(), "a@b.com", "s", "", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, testLogger())
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{
		Provider:    "ses",
		FromAddress: "noreply@example.com",
		SES:         SESConfig{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"},
	}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}
