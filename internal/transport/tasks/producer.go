package tasks

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// Producer enqueues delivery tasks. Tasks carry only the log entry ID;
// the handler re-reads the entry so a stale payload can never overwrite
// a newer outcome.
type Producer struct {
	client *asynq.Client
}

func NewProducer(client *asynq.Client) *Producer {
	return &Producer{client: client}
}

func (p *Producer) EnqueueDelivery(ctx context.Context, entryID string) error {
	payload, err := json.Marshal(notificationDeliverPayload{EntryID: entryID})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeNotificationDeliver, payload)

	// Delivery outcomes are recorded in the log; re-drives go through the
	// explicit endpoint, so asynq-level retries are disabled.
	_, err = p.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(0),
	)
	if err != nil {
		return fmt.Errorf("enqueue delivery: %w", err)
	}

	return nil
}
