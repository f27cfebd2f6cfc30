package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

const defaultHistoryLimit = 50

// LogRepository is the durable notification log store.
type LogRepository interface {
	Create(ctx context.Context, entry *entity.NotificationLogEntry) error
	GetByID(ctx context.Context, id string) (*entity.NotificationLogEntry, error)
	HasSent(ctx context.Context, event entity.EventType, dealID, recipientID string) (bool, error)
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]entity.NotificationLogEntry, error)
	ListByDeal(ctx context.Context, dealID string) ([]entity.NotificationLogEntry, error)
	UpdateStatus(ctx context.Context, id string, status entity.NotificationStatus) error
	RecordOutcome(ctx context.Context, id string, status entity.NotificationStatus, errorMessage string) error
}

// TaskEnqueuer hands a queued log entry to the out-of-band dispatcher.
type TaskEnqueuer interface {
	EnqueueDelivery(ctx context.Context, entryID string) error
}

// QueueService owns the enqueue side of the notification pipeline: the
// idempotency guard, log entry creation and the dispatcher hand-off.
type QueueService struct {
	logs  LogRepository
	tasks TaskEnqueuer
}

func NewQueueService(logs LogRepository, tasks TaskEnqueuer) *QueueService {
	return &QueueService{
		logs:  logs,
		tasks: tasks,
	}
}

// IsDuplicate reports whether a notification for this tuple already reached
// SENT. PENDING, FAILED and RETRYING entries do not count: a prior failed or
// in-flight attempt never blocks a fresh enqueue.
func (s *QueueService) IsDuplicate(
	ctx context.Context,
	event entity.EventType,
	dealID, recipientID string,
) (bool, error) {
	sent, err := s.logs.HasSent(ctx, event, dealID, recipientID)
	if err != nil {
		return false, fmt.Errorf("logs.HasSent: %w", err)
	}

	return sent, nil
}

// Queue creates a PENDING log entry for the tuple and enqueues its delivery
// task. A tuple that already reached SENT is a no-op: Queue returns (nil, nil)
// and no new entry is created.
func (s *QueueService) Queue(
	ctx context.Context,
	event entity.EventType,
	dealID, recipientID string,
) (*entity.NotificationLogEntry, error) {
	duplicate, err := s.IsDuplicate(ctx, event, dealID, recipientID)
	if err != nil {
		return nil, err
	}

	if duplicate {
		logger(ctx).Info("duplicate notification prevented",
			"event", string(event),
			"deal_id", dealID,
			"recipient_id", recipientID,
		)
		return nil, nil
	}

	entry := &entity.NotificationLogEntry{
		ID:          xid.New().String(),
		EventType:   event,
		DealID:      dealID,
		RecipientID: recipientID,
		Channel:     entity.ChannelEmail,
		Status:      entity.NotificationStatusPending,
		Attempts:    0,
		CreatedAt:   time.Now(),
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		// The storage-level unique constraint closes the race between the
		// guard check and the insert; losing that race is the same no-op
		// outcome as the guard firing.
		if domain.HasCode(err, errcodes.DuplicateNotification) {
			logger(ctx).Info("duplicate notification prevented by store",
				"event", string(event),
				"deal_id", dealID,
				"recipient_id", recipientID,
			)
			return nil, nil
		}
		return nil, fmt.Errorf("logs.Create: %w", err)
	}

	if err := s.tasks.EnqueueDelivery(ctx, entry.ID); err != nil {
		return nil, fmt.Errorf("tasks.EnqueueDelivery: %w", err)
	}

	return entry, nil
}

// QueueForDeal queues one notification per party. One party's enqueue failure
// does not stop the other; failures are logged and never bubble up to the
// confirmation request that triggered them.
func (s *QueueService) QueueForDeal(
	ctx context.Context,
	event entity.EventType,
	deal entity.Deal,
) []entity.NotificationLogEntry {
	var queued []entity.NotificationLogEntry

	for _, recipientID := range []string{deal.BuyerID, deal.FarmerID} {
		entry, err := s.Queue(ctx, event, deal.ID, recipientID)
		if err != nil {
			logger(ctx).Error("failed to queue notification",
				"event", string(event),
				"deal_id", deal.ID,
				"recipient_id", recipientID,
				"error", err,
			)
			continue
		}

		if entry != nil {
			queued = append(queued, *entry)
		}
	}

	return queued
}

// Redrive re-enqueues a FAILED entry, flipping it to RETRYING first. This is
// the only path that retries a terminal delivery failure.
func (s *QueueService) Redrive(ctx context.Context, entryID string) (*entity.NotificationLogEntry, error) {
	entry, err := s.logs.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("logs.GetByID: %w", err)
	}

	if entry.Status != entity.NotificationStatusFailed {
		return nil, domain.NewError(errcodes.NotRedrivable,
			fmt.Sprintf("entry %s is %s, only FAILED entries can be re-driven", entryID, entry.Status))
	}

	if err := s.logs.UpdateStatus(ctx, entryID, entity.NotificationStatusRetrying); err != nil {
		return nil, fmt.Errorf("logs.UpdateStatus: %w", err)
	}

	if err := s.tasks.EnqueueDelivery(ctx, entryID); err != nil {
		return nil, fmt.Errorf("tasks.EnqueueDelivery: %w", err)
	}

	entry.Status = entity.NotificationStatusRetrying

	return entry, nil
}

// RecipientHistory returns the recipient's notification log, newest first.
func (s *QueueService) RecipientHistory(
	ctx context.Context,
	recipientID string,
	limit int,
) ([]entity.NotificationLogEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.logs.ListByRecipient(ctx, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("logs.ListByRecipient: %w", err)
	}

	return entries, nil
}

// DealHistory returns every notification attempted for a deal, newest first.
func (s *QueueService) DealHistory(ctx context.Context, dealID string) ([]entity.NotificationLogEntry, error) {
	entries, err := s.logs.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("logs.ListByDeal: %w", err)
	}

	return entries, nil
}
