package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/logger"
	"fittrack/internal/membership"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func newTestService(rdb *redis.Client, webhookURL string) *Service {
	return &Service{
		redis:      rdb,
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
}

func TestNotify_QueuesEvent(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*key_redeemed.*`).SetVal(1)

	svc := newTestService(db, "")
	err := svc.Notify(ctx, membership.Event{
		Username: "alice",
		Action:   membership.ActionKeyRedeemed,
		Tier:     membership.TierPro,
		Details:  "key PRO-...AB01",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotify_QueueError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(assert.AnError)

	svc := newTestService(db, "")
	err := svc.Notify(ctx, membership.Event{Action: membership.ActionKeysIssued})
	assert.Error(t, err)
}

func TestDeliver_PostsToWebhook(t *testing.T) {
	var received membership.Event
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		received = membership.Event{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer sink.Close()

	db, _ := redismock.NewClientMock()
	svc := newTestService(db, sink.URL)

	err := svc.deliver(context.Background(), membership.Event{
		Username: "alice",
		Action:   membership.ActionKeyForceApplied,
		Tier:     membership.TierElite,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", received.Username)
	assert.Equal(t, membership.ActionKeyForceApplied, received.Action)
}

func TestDeliver_NonSuccessStatusIsError(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer sink.Close()

	db, _ := redismock.NewClientMock()
	svc := newTestService(db, sink.URL)

	err := svc.deliver(context.Background(), membership.Event{Action: membership.ActionKeyRedeemed})
	assert.Error(t, err)
}

func TestDeliver_NoSinkConfigured(t *testing.T) {
	db, _ := redismock.NewClientMock()
	svc := newTestService(db, "")

	err := svc.deliver(context.Background(), membership.Event{Action: membership.ActionKeyRedeemed})
	assert.NoError(t, err)
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(3)

	svc := newTestService(db, "")
	assert.Equal(t, int64(3), svc.QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
