package tasks

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/sanjanb/k-tech-nain/internal/domain/service/notification"
)

// Handler processes delivery tasks. Errors are logged and swallowed:
// every outcome is already recorded on the log entry, and returning an
// error would only make asynq mark the task failed for a failure the
// log already owns.
type Handler struct {
	dispatcher *notification.Dispatcher
}

func NewHandler(dispatcher *notification.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) HandleDeliver(ctx context.Context, task *asynq.Task) error {
	var payload notificationDeliverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger(ctx).Error("malformed delivery payload", "error", err)
		return nil
	}

	if err := h.dispatcher.Process(ctx, payload.EntryID); err != nil {
		logger(ctx).Error("notification delivery failed",
			"error", err,
			"entry_id", payload.EntryID,
		)
	}

	return nil
}
