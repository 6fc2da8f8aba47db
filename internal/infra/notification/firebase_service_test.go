package notification

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"zeneasy/config"
	"zeneasy/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticastClient struct {
	calls    [][]string
	response func(tokens []string) *messaging.BatchResponse
	err      error
}

func (f *fakeMulticastClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.calls = append(f.calls, message.Tokens)
	if f.err != nil {
		return nil, f.err
	}

	return f.response(message.Tokens), nil
}

func allSucceed(tokens []string) *messaging.BatchResponse {
	responses := make([]*messaging.SendResponse, len(tokens))
	for i := range tokens {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{SuccessCount: len(tokens), Responses: responses}
}

func TestFirebaseService_SendMulticastChunks(t *testing.T) {
	client := &fakeMulticastClient{response: allSucceed}
	svc := &firebaseService{client: client}

	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = "token-" + strconv.Itoa(i)
	}

	result, err := svc.SendMulticast(context.Background(), tokens, &service.PushMessage{Title: "t", Body: "b"})
	require.NoError(t, err)

	require.Len(t, client.calls, 3)
	assert.Len(t, client.calls[0], 500)
	assert.Len(t, client.calls[1], 500)
	assert.Len(t, client.calls[2], 201)
	assert.Equal(t, 1201, result.SuccessCount)
	assert.Empty(t, result.InvalidTokens)
}

func TestFirebaseService_SendMulticastEmpty(t *testing.T) {
	client := &fakeMulticastClient{response: allSucceed}
	svc := &firebaseService{client: client}

	result, err := svc.SendMulticast(context.Background(), nil, &service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Empty(t, client.calls)
	assert.Zero(t, result.SuccessCount)
}

func TestFirebaseService_SendMulticastFailure(t *testing.T) {
	client := &fakeMulticastClient{err: errors.New("quota exceeded")}
	svc := &firebaseService{client: client}

	_, err := svc.SendMulticast(context.Background(), []string{"a"}, &service.PushMessage{Title: "t"})
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestNewNotificationService_Unconfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewNotificationService(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: logger,
	})
	require.NoError(t, err)
	require.IsType(t, &logNotifier{}, svc)

	result, err := svc.SendMulticast(context.Background(), []string{"a", "b"}, &service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
}
