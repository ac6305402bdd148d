package notification

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"testing"

	"cakes/config"
	"cakes/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPushService_FallsBackToLogOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	svc, err := NewPushService(context.Background(), &config.Config{Firebase: &config.FirebaseConfig{}}, logger)
	require.NoError(t, err)
	require.IsType(t, &logOnlyService{}, svc)

	result, err := svc.Send(context.Background(), []string{"a", "b"}, &service.PushMessage{
		Title: "New delivery",
		Body:  "Order CK250101000001",
		Data:  map[string]string{"order_number": "CK250101000001"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.InvalidTokens)
	assert.Contains(t, buf.String(), "New delivery")
}

func TestChunks(t *testing.T) {
	tokens := make([]string, 1001)

	var sizes []int
	for chunk := range chunks(tokens, maxMulticastTokens) {
		sizes = append(sizes, len(chunk))
	}

	assert.Equal(t, []int{500, 500, 1}, sizes)
	assert.Empty(t, slices.Collect(chunks(nil, maxMulticastTokens)))
}

func TestMulticast_UrgentSetsPlatformPriority(t *testing.T) {
	normal := multicast([]string{"t"}, &service.PushMessage{Title: "Order delivered"})
	assert.Nil(t, normal.Android)
	assert.Nil(t, normal.APNS)

	urgent := multicast([]string{"t"}, &service.PushMessage{Title: "New order assigned", Urgent: true})
	require.NotNil(t, urgent.Android)
	assert.Equal(t, "high", urgent.Android.Priority)
	assert.Equal(t, "10", urgent.APNS.Headers["apns-priority"])
}
