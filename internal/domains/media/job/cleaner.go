package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/media/model"
	"portfolio-backend/internal/infrastructure/queue"
	"portfolio-backend/internal/shared"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// KeyResolver maps public URLs back to object keys.
type KeyResolver interface {
	KeyFromURL(url string) (string, bool)
}

// Cleaner implements shared.MediaCleaner by enqueueing a
// media:delete_objects task. Enqueue failures are logged, never returned:
// the database delete has already happened.
type Cleaner struct {
	enqueuer Enqueuer
	keys     KeyResolver
}

var _ shared.MediaCleaner = (*Cleaner)(nil)

// NewCleaner accepts a nil enqueuer (Redis not configured); scheduling is then skipped.
func NewCleaner(enqueuer Enqueuer, keys KeyResolver) *Cleaner {
	return &Cleaner{enqueuer: enqueuer, keys: keys}
}

func (c *Cleaner) ScheduleDelete(ctx context.Context, urls ...string) {
	keys := c.Keys(urls...)
	if len(keys) == 0 {
		return
	}

	if c.enqueuer == nil {
		log.Warn().Strs("keys", keys).Msg("no task queue configured, skipping media cleanup")
		return
	}

	data, err := json.Marshal(shared.DeleteObjectsPayload{Keys: keys})
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal delete objects payload")
		return
	}

	task := asynq.NewTask(shared.TypeDeleteMediaObjects, data)
	info, err := c.enqueuer.EnqueueContext(
		context.WithoutCancel(ctx),
		task,
		asynq.Queue(queue.QueueLow),
		asynq.MaxRetry(5),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("Failed to enqueue media cleanup")
		return
	}

	log.Info().Str("task_id", info.ID).Int("keys", len(keys)).Msg("media cleanup enqueued")
}

// Keys resolves the URLs this store owns to keys, adds the generated
// thumbnail of every original and removes duplicates.
func (c *Cleaner) Keys(urls ...string) []string {
	if c.keys == nil {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(key string) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	for _, url := range urls {
		key, ok := c.keys.KeyFromURL(url)
		if !ok {
			continue
		}
		add(key)
		if thumb, ok := model.ThumbnailKey(key); ok {
			add(thumb)
		}
	}
	return out
}
