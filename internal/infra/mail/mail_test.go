package mail

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"zeneasy/config"
	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	messages []*gomail.Message
	err      error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.messages = append(d.messages, m...)

	return d.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSMTPSender_Send(t *testing.T) {
	d := &recordingDialer{}
	sender := &smtpSender{dialer: d, from: "no-reply@zeneasy.com", logger: newDiscardLogger()}

	err := sender.Send(context.Background(), &service.Email{
		To:      "rahim@example.com",
		Subject: "Your code",
		Text:    "Your code is 012345",
	})
	require.NoError(t, err)
	require.Len(t, d.messages, 1)

	msg := d.messages[0]
	assert.Equal(t, []string{"no-reply@zeneasy.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"rahim@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Your code"}, msg.GetHeader("Subject"))

	var body strings.Builder
	_, err = msg.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "012345")
}

func TestSMTPSender_SendFailure(t *testing.T) {
	d := &recordingDialer{err: errors.New("connection refused")}
	sender := &smtpSender{dialer: d, from: "no-reply@zeneasy.com", logger: newDiscardLogger()}

	err := sender.Send(context.Background(), &service.Email{To: "rahim@example.com", Subject: "s", Text: "t"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestSMTPSender_RequiresRecipient(t *testing.T) {
	d := &recordingDialer{}
	sender := &smtpSender{dialer: d, logger: newDiscardLogger()}

	assert.Error(t, sender.Send(context.Background(), &service.Email{Subject: "s"}))
	assert.Empty(t, d.messages)
}

func TestSMTPSender_CanceledContext(t *testing.T) {
	d := &recordingDialer{}
	sender := &smtpSender{dialer: d, logger: newDiscardLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, sender.Send(ctx, &service.Email{To: "rahim@example.com"}))
	assert.Empty(t, d.messages)
}

func TestNewEmailSender(t *testing.T) {
	logger := newDiscardLogger()

	sender := NewEmailSender(Params{Config: &config.Config{}, Logger: logger})
	assert.IsType(t, &logSender{}, sender)
	assert.NoError(t, sender.Send(context.Background(), &service.Email{To: "a@b.c", Subject: "s"}))

	sender = NewEmailSender(Params{
		Config: &config.Config{Mail: &config.MailConfig{Host: "smtp.example.com", Port: 587, Username: "bot@example.com"}},
		Logger: logger,
	})
	require.IsType(t, &smtpSender{}, sender)
	assert.Equal(t, "bot@example.com", sender.(*smtpSender).from)
}
