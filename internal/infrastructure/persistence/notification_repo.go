package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

const pgUniqueViolation = "23505"

// NotificationRepository owns the notification_logs table. Entries are
// append-mostly: created once by the enqueue side, then mutated only by the
// dispatcher recording outcomes.
type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = `id, event_type, deal_id, recipient_id, channel, status, attempts, created_at, last_attempt_at, sent_at, error_message`

func (r *NotificationRepository) Create(ctx context.Context, entry *entity.NotificationLogEntry) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Enqueue-side duplicate check, re-done inside the transaction. The
		// partial unique index on SENT rows is the hard backstop for the
		// at-most-once-SENT invariant.
		existsQuery := `
			SELECT EXISTS(
				SELECT 1 FROM notification_logs
				WHERE event_type = $1 AND deal_id = $2 AND recipient_id = $3 AND status = 'SENT'
			)`

		var sent bool
		if err := tx.GetContext(ctx, &sent, existsQuery, entry.EventType, entry.DealID, entry.RecipientID); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check sent notifications")
		}

		if sent {
			return domain.NewError(errcodes.DuplicateNotification, "notification already sent for this event")
		}

		insertQuery := `
			INSERT INTO notification_logs (id, event_type, deal_id, recipient_id, channel, status, attempts, created_at)
			VALUES (:id, :event_type, :deal_id, :recipient_id, :channel, :status, :attempts, :created_at)`

		params := map[string]any{
			"id":           entry.ID,
			"event_type":   string(entry.EventType),
			"deal_id":      entry.DealID,
			"recipient_id": entry.RecipientID,
			"channel":      string(entry.Channel),
			"status":       string(entry.Status),
			"attempts":     entry.Attempts,
			"created_at":   entry.CreatedAt,
		}

		if _, err := tx.NamedExecContext(ctx, insertQuery, params); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert notification log")
		}

		return nil
	})
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*entity.NotificationLogEntry, error) {
	query := `SELECT ` + notificationColumns + ` FROM notification_logs WHERE id = $1`

	var schema notificationSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.NotificationNotFound, "notification log entry not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get notification log entry")
	}

	entry := schema.toDomain()

	return &entry, nil
}

func (r *NotificationRepository) HasSent(
	ctx context.Context,
	event entity.EventType,
	dealID, recipientID string,
) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notification_logs
			WHERE event_type = $1 AND deal_id = $2 AND recipient_id = $3 AND status = 'SENT'
		)`

	var sent bool
	if err := r.db.GetContext(ctx, &sent, query, string(event), dealID, recipientID); err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check sent notifications")
	}

	return sent, nil
}

func (r *NotificationRepository) ListByRecipient(
	ctx context.Context,
	recipientID string,
	limit int,
) ([]entity.NotificationLogEntry, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notification_logs
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var schemas []notificationSchema
	if err := r.db.SelectContext(ctx, &schemas, query, recipientID, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list notifications")
	}

	return notificationsToDomain(schemas), nil
}

func (r *NotificationRepository) ListByDeal(ctx context.Context, dealID string) ([]entity.NotificationLogEntry, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notification_logs
		WHERE deal_id = $1
		ORDER BY created_at DESC`

	var schemas []notificationSchema
	if err := r.db.SelectContext(ctx, &schemas, query, dealID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deal notifications")
	}

	return notificationsToDomain(schemas), nil
}

func (r *NotificationRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status entity.NotificationStatus,
) error {
	query := `UPDATE notification_logs SET status = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update notification status")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.NotificationNotFound, "notification log entry not found")
	}

	return nil
}

// RecordOutcome transitions the entry's status, increments the attempts
// counter and stamps the attempt time. SENT additionally stamps sent_at; the
// partial unique index rejects a second SENT for the same tuple.
func (r *NotificationRepository) RecordOutcome(
	ctx context.Context,
	id string,
	status entity.NotificationStatus,
	errorMessage string,
) error {
	query := `
		UPDATE notification_logs
		SET status = $1,
		    attempts = attempts + 1,
		    last_attempt_at = $2,
		    sent_at = CASE WHEN $1 = 'SENT' THEN $2 ELSE sent_at END,
		    error_message = NULLIF($3, '')
		WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, string(status), time.Now(), errorMessage, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.WrapError(err, errcodes.DuplicateNotification, "another entry already sent for this event")
		}
		return domain.WrapError(err, errcodes.InternalServerError, "failed to record notification outcome")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.NotificationNotFound, "notification log entry not found")
	}

	return nil
}

func notificationsToDomain(schemas []notificationSchema) []entity.NotificationLogEntry {
	entries := make([]entity.NotificationLogEntry, 0, len(schemas))
	for i := range schemas {
		entries = append(entries, schemas[i].toDomain())
	}

	return entries
}
