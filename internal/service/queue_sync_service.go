package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis keys mirroring the in-memory queue for waiting-room dashboards.
const (
	RedisQueueDepthKey = "dispatch:queue:depth"
	RedisTicketSeqKey  = "dispatch:queue:seq"
)

// takeTicketNumberScript hands out the next display number and bumps the
// mirrored queue depth in one atomic step. Redis Go client switches to
// EVALSHA automatically after the first call.
var takeTicketNumberScript = redis.NewScript(`
	local seq = redis.call('INCR', KEYS[1])
	redis.call('INCR', KEYS[2])
	return seq
`)

// QueueSyncService mirrors queue counters into Redis so waiting-room boards
// on other instances can read depth and ticket numbers without touching the
// dispatcher. The in-memory priority queue stays authoritative; the mirror is
// best effort.
type QueueSyncService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewQueueSyncService(redisClient *redis.Client, log *logrus.Logger) *QueueSyncService {
	return &QueueSyncService{
		redisClient: redisClient,
		log:         log,
	}
}

// SyncOnStartup overwrites the mirrored counters from the authoritative
// state. Should be called before accepting traffic: the dispatcher rebuilds
// its queue from the open tickets in the database and pushes the resulting
// depth here.
func (s *QueueSyncService) SyncOnStartup(ctx context.Context, queueDepth int, lastTicketNumber int64) error {
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping queue sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, RedisQueueDepthKey, queueDepth, 0)
	pipe.Set(ctx, RedisTicketSeqKey, lastTicketNumber, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Errorf("Failed to sync queue counters: %+v", err)
		return fmt.Errorf("queue counter sync: %w", err)
	}

	s.log.Infof("Queue mirror synced: depth=%d, seq=%d", queueDepth, lastTicketNumber)
	return nil
}

// TakeTicketNumber atomically reserves the next display number and bumps the
// mirrored depth. Returns the 1-based ticket number.
func (s *QueueSyncService) TakeTicketNumber(ctx context.Context) (int64, error) {
	result, err := takeTicketNumberScript.Run(ctx, s.redisClient, []string{RedisTicketSeqKey, RedisQueueDepthKey}).Int64()
	if err != nil {
		s.log.Warnf("Failed to take ticket number: %+v", err)
		return 0, fmt.Errorf("take ticket number: %w", err)
	}

	s.log.Debugf("Issued ticket number %d", result)
	return result, nil
}

// MarkDispatched decrements the mirrored depth after a ticket leaves the
// queue. Never drops below zero.
func (s *QueueSyncService) MarkDispatched(ctx context.Context) error {
	depth, err := s.redisClient.Decr(ctx, RedisQueueDepthKey).Result()
	if err != nil {
		s.log.Warnf("Failed to decrement queue depth: %+v", err)
		return fmt.Errorf("decrement queue depth: %w", err)
	}

	if depth < 0 {
		// Mirror drifted (e.g. flushed Redis); clamp instead of going negative.
		if err := s.redisClient.Set(ctx, RedisQueueDepthKey, 0, 0).Err(); err != nil {
			s.log.Warnf("Failed to clamp queue depth: %+v", err)
		}
	}
	return nil
}

// QueueDepth reads the mirrored depth, for dashboards.
func (s *QueueSyncService) QueueDepth(ctx context.Context) (int, error) {
	depth, err := s.redisClient.Get(ctx, RedisQueueDepthKey).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("read queue depth: %w", err)
	}
	return depth, nil
}
