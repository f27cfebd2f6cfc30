package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/notification"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

type logStoreStub struct {
	entries   map[string]*entity.NotificationLogEntry
	createErr error
}

func newLogStoreStub() *logStoreStub {
	return &logStoreStub{entries: make(map[string]*entity.NotificationLogEntry)}
}

func (s *logStoreStub) add(entry entity.NotificationLogEntry) {
	s.entries[entry.ID] = &entry
}

func (s *logStoreStub) Create(_ context.Context, entry *entity.NotificationLogEntry) error {
	if s.createErr != nil {
		return s.createErr
	}

	stored := *entry
	s.entries[entry.ID] = &stored

	return nil
}

func (s *logStoreStub) GetByID(_ context.Context, id string) (*entity.NotificationLogEntry, error) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, domain.NewError(errcodes.NotificationNotFound, "notification log entry not found")
	}

	found := *entry

	return &found, nil
}

func (s *logStoreStub) HasSent(_ context.Context, event entity.EventType, dealID, recipientID string) (bool, error) {
	for _, entry := range s.entries {
		if entry.EventType == event &&
			entry.DealID == dealID &&
			entry.RecipientID == recipientID &&
			entry.Status == entity.NotificationStatusSent {
			return true, nil
		}
	}

	return false, nil
}

func (s *logStoreStub) ListByRecipient(_ context.Context, recipientID string, limit int) ([]entity.NotificationLogEntry, error) {
	var out []entity.NotificationLogEntry

	for _, entry := range s.entries {
		if entry.RecipientID == recipientID && len(out) < limit {
			out = append(out, *entry)
		}
	}

	return out, nil
}

func (s *logStoreStub) ListByDeal(_ context.Context, dealID string) ([]entity.NotificationLogEntry, error) {
	var out []entity.NotificationLogEntry

	for _, entry := range s.entries {
		if entry.DealID == dealID {
			out = append(out, *entry)
		}
	}

	return out, nil
}

func (s *logStoreStub) UpdateStatus(_ context.Context, id string, status entity.NotificationStatus) error {
	entry, ok := s.entries[id]
	if !ok {
		return domain.NewError(errcodes.NotificationNotFound, "notification log entry not found")
	}

	entry.Status = status

	return nil
}

func (s *logStoreStub) RecordOutcome(_ context.Context, id string, status entity.NotificationStatus, errorMessage string) error {
	entry, ok := s.entries[id]
	if !ok {
		return domain.NewError(errcodes.NotificationNotFound, "notification log entry not found")
	}

	now := time.Now()
	entry.Status = status
	entry.Attempts++
	entry.LastAttemptAt = &now
	entry.ErrorMessage = errorMessage

	if status == entity.NotificationStatusSent {
		entry.SentAt = &now
	}

	return nil
}

type enqueuerStub struct {
	ids []string
	err error
}

func (e *enqueuerStub) EnqueueDelivery(_ context.Context, entryID string) error {
	if e.err != nil {
		return e.err
	}

	e.ids = append(e.ids, entryID)

	return nil
}

func TestQueueCreatesPendingEntry(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logs := newLogStoreStub()
	enqueuer := &enqueuerStub{}
	svc := notification.NewQueueService(logs, enqueuer)

	entry, err := svc.Queue(ctx, entity.EventDealConfirmed, "deal-1", "buyer-1")
	rq.NoError(err)
	rq.NotNil(entry)
	rq.NotEmpty(entry.ID)
	rq.Equal(entity.NotificationStatusPending, entry.Status)
	rq.Equal(entity.ChannelEmail, entry.Channel)
	rq.Zero(entry.Attempts)

	stored, err := logs.GetByID(ctx, entry.ID)
	rq.NoError(err)
	rq.Equal(entity.NotificationStatusPending, stored.Status)

	rq.Equal([]string{entry.ID}, enqueuer.ids)
}

func TestQueueSkipsTupleAlreadySent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logs := newLogStoreStub()
	logs.add(entity.NotificationLogEntry{
		ID:          "existing",
		EventType:   entity.EventDealConfirmed,
		DealID:      "deal-1",
		RecipientID: "buyer-1",
		Channel:     entity.ChannelEmail,
		Status:      entity.NotificationStatusSent,
	})

	enqueuer := &enqueuerStub{}
	svc := notification.NewQueueService(logs, enqueuer)

	entry, err := svc.Queue(ctx, entity.EventDealConfirmed, "deal-1", "buyer-1")
	rq.NoError(err)
	rq.Nil(entry)
	rq.Empty(enqueuer.ids)
}

func TestQueueAllowsTupleAfterFailure(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logs := newLogStoreStub()
	logs.add(entity.NotificationLogEntry{
		ID:          "failed-attempt",
		EventType:   entity.EventDealConfirmed,
		DealID:      "deal-1",
		RecipientID: "buyer-1",
		Channel:     entity.ChannelEmail,
		Status:      entity.NotificationStatusFailed,
	})

	enqueuer := &enqueuerStub{}
	svc := notification.NewQueueService(logs, enqueuer)

	entry, err := svc.Queue(ctx, entity.EventDealConfirmed, "deal-1", "buyer-1")
	rq.NoError(err)
	rq.NotNil(entry)
	rq.Len(enqueuer.ids, 1)
}

func TestQueueTreatsStoreDuplicateAsNoOp(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logs := newLogStoreStub()
	logs.createErr = domain.NewError(errcodes.DuplicateNotification, "already sent")

	enqueuer := &enqueuerStub{}
	svc := notification.NewQueueService(logs, enqueuer)

	entry, err := svc.Queue(ctx, entity.EventDealConfirmed, "deal-1", "buyer-1")
	rq.NoError(err)
	rq.Nil(entry)
	rq.Empty(enqueuer.ids)
}

func TestQueueForDealTargetsBothParties(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logs := newLogStoreStub()
	enqueuer := &enqueuerStub{}
	svc := notification.NewQueueService(logs, enqueuer)

	queued := svc.QueueForDeal(ctx, entity.EventDealConfirmed, deal(true, true))
	rq.Len(queued, 2)
	rq.Len(enqueuer.ids, 2)

	recipients := []string{queued[0].RecipientID, queued[1].RecipientID}
	rq.ElementsMatch([]string{"buyer-1", "farmer-1"}, recipients)
}

func TestRedriveFailedEntry(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logs := newLogStoreStub()
	logs.add(entity.NotificationLogEntry{
		ID:          "entry-1",
		EventType:   entity.EventDealConfirmed,
		DealID:      "deal-1",
		RecipientID: "buyer-1",
		Channel:     entity.ChannelEmail,
		Status:      entity.NotificationStatusFailed,
		Attempts:    1,
	})

	enqueuer := &enqueuerStub{}
	svc := notification.NewQueueService(logs, enqueuer)

	entry, err := svc.Redrive(ctx, "entry-1")
	rq.NoError(err)
	rq.Equal(entity.NotificationStatusRetrying, entry.Status)
	rq.Equal([]string{"entry-1"}, enqueuer.ids)

	stored, err := logs.GetByID(ctx, "entry-1")
	rq.NoError(err)
	rq.Equal(entity.NotificationStatusRetrying, stored.Status)
}

func TestRedriveRejectsNonFailedEntry(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logs := newLogStoreStub()
	logs.add(entity.NotificationLogEntry{
		ID:     "entry-1",
		Status: entity.NotificationStatusSent,
	})

	enqueuer := &enqueuerStub{}
	svc := notification.NewQueueService(logs, enqueuer)

	_, err := svc.Redrive(ctx, "entry-1")
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.NotRedrivable))
	rq.Empty(enqueuer.ids)
}
