package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared"
)

// ObjectRemover is satisfied by storage.ObjectStorage.
type ObjectRemover interface {
	RemoveObjects(ctx context.Context, keys []string) error
}

type DeleteObjectsHandler struct {
	store ObjectRemover
}

func NewDeleteObjectsHandler(store ObjectRemover) *DeleteObjectsHandler {
	return &DeleteObjectsHandler{store: store}
}

func (h *DeleteObjectsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.DeleteObjectsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal DeleteObjects payload")
		// malformed payloads will never succeed
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if len(payload.Keys) == 0 {
		return nil
	}

	if err := h.store.RemoveObjects(ctx, payload.Keys); err != nil {
		return fmt.Errorf("remove objects: %w", err)
	}

	log.Info().Int("keys", len(payload.Keys)).Msg("media objects removed")
	return nil
}
