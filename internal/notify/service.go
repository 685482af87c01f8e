package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"fittrack/internal/logger"
	"fittrack/internal/membership"
	"fittrack/internal/metrics"
)

const (
	queueKey  = "membership_events"
	failedKey = "membership_events_failed"

	maxTries = 3
)

type eventJob struct {
	Event   membership.Event `json:"event"`
	Tries   int              `json:"tries"`
	Created time.Time        `json:"created"`
}

// Service queues membership events in redis and delivers them to a webhook
// sink from a background worker. Queueing is cheap and the caller's success
// never depends on delivery.
type Service struct {
	redis      *redis.Client
	webhookURL string
	client     *http.Client
}

func New(redisAddr, webhookURL string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify enqueues the event. Implements membership.Notifier.
func (s *Service) Notify(ctx context.Context, event membership.Event) error {
	job := eventJob{
		Event:   event,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal event job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue %s event: %v", event.Action, err)
		metrics.RecordNotification(event.Action, "queue_error")
		return err
	}

	logger.Infof("Event queued: %s for %s", event.Action, event.Username)
	metrics.RecordNotification(event.Action, "queued")
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}
	metrics.NotificationQueueLength.Set(float64(s.QueueLength(ctx)))

	var job eventJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad event data: %v", err)
		return
	}

	job.Tries++
	if err := s.deliver(ctx, job.Event); err != nil {
		logger.Errorf("Failed to deliver %s event (attempt %d): %v", job.Event.Action, job.Tries, err)
		metrics.RecordNotification(job.Event.Action, "failed")

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
		} else {
			logger.Errorf("Event %s dropped after %d attempts", job.Event.Action, maxTries)
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordNotification(job.Event.Action, "delivered")
}

func (s *Service) deliver(ctx context.Context, event membership.Event) error {
	if s.webhookURL == "" {
		// no sink configured; treat as delivered so the queue drains
		logger.Debugf("No webhook sink, dropping %s event for %s", event.Action, event.Username)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errors.New("webhook returned " + resp.Status)
	}
	return nil
}

func (s *Service) saveFailed(job eventJob, cause error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": cause.Error(),
	}
	data, err := json.Marshal(failed)
	if err != nil {
		return
	}
	if err := s.redis.LPush(context.Background(), failedKey, data).Err(); err != nil {
		logger.Errorf("Failed to park dead event: %v", err)
	}
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0
	}
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}
