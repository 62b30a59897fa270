package service

import (
	"context"
	"encoding/json"
	"time"

	"clinic-dispatch/internal/metrics"
	"clinic-dispatch/internal/notification"
	"clinic-dispatch/pkg/retry"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// NotificationChannel is the pub/sub channel display boards subscribe to.
	NotificationChannel = "dispatch:notifications"

	publishTimeout    = 5 * time.Second
	publishMaxRetries = 3
	publishBaseDelay  = 200 * time.Millisecond
)

// RedisNotifier delivers flushed notification batches over Redis pub/sub.
// It is the transport collaborator behind the batcher's Sink: delivery is
// retried with exponential backoff and a batch that still fails is logged
// and dropped, not requeued.
type RedisNotifier struct {
	redisClient *redis.Client
	log         *logrus.Logger
	sleeper     retry.Sleeper
}

func NewRedisNotifier(redisClient *redis.Client, log *logrus.Logger) *RedisNotifier {
	return &RedisNotifier{
		redisClient: redisClient,
		log:         log,
		sleeper:     retry.NewSleeper(),
	}
}

// Deliver publishes the batch as a single JSON message, preserving insertion
// order.
func (n *RedisNotifier) Deliver(batch []notification.Notification) {
	if len(batch) == 0 {
		return
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		n.log.Errorf("Failed to encode notification batch: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = retry.Do(ctx, publishMaxRetries, publishBaseDelay, n.sleeper, func(ctx context.Context) error {
		return n.redisClient.Publish(ctx, NotificationChannel, payload).Err()
	})
	if err != nil {
		n.log.Errorf("Dropping notification batch of %d after %d attempts: %+v", len(batch), publishMaxRetries, err)
		return
	}

	metrics.BatchesDeliveredTotal.Inc()
	n.log.Debugf("Published notification batch: %d items", len(batch))
}
