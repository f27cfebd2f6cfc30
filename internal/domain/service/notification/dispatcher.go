package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/template"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

const defaultDeliveryTimeout = 10 * time.Second

// DealResolver, ProductResolver and UserResolver are the point lookups the
// dispatcher needs to assemble a message. Misses are terminal for the entry.
type DealResolver interface {
	GetByID(ctx context.Context, id string) (*entity.Deal, error)
}

type ProductResolver interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

type UserResolver interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// Mailer delivers a rendered message through the email channel.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// FailureAlerter is notified about entries that end up FAILED. Optional.
type FailureAlerter interface {
	AlertNotificationFailed(ctx context.Context, entry entity.NotificationLogEntry, reason string)
}

// Dispatcher is the consume side of the notification pipeline: it turns one
// queued log entry into one delivery attempt and records the outcome. It
// never retries by itself; a FAILED entry stays FAILED until re-driven.
type Dispatcher struct {
	logs            LogRepository
	deals           DealResolver
	products        ProductResolver
	users           UserResolver
	mailer          Mailer
	alerter         FailureAlerter
	deliveryTimeout time.Duration
}

func NewDispatcher(
	logs LogRepository,
	deals DealResolver,
	products ProductResolver,
	users UserResolver,
	mailer Mailer,
) *Dispatcher {
	return &Dispatcher{
		logs:            logs,
		deals:           deals,
		products:        products,
		users:           users,
		mailer:          mailer,
		deliveryTimeout: defaultDeliveryTimeout,
	}
}

func (d *Dispatcher) WithFailureAlerter(alerter FailureAlerter) *Dispatcher {
	d.alerter = alerter
	return d
}

func (d *Dispatcher) WithDeliveryTimeout(timeout time.Duration) *Dispatcher {
	d.deliveryTimeout = timeout
	return d
}

// Process executes one delivery attempt for the entry. The outcome, SENT or
// FAILED with the error message, is always recorded and the attempts counter
// always increments. The returned error describes the failure for the caller
// to log; by the time Process returns, the entry is already terminal.
func (d *Dispatcher) Process(ctx context.Context, entryID string) error {
	entry, err := d.logs.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("logs.GetByID: %w", err)
	}

	// A SENT entry must never be delivered twice, even if its task is
	// redelivered by the queue.
	if entry.Status == entity.NotificationStatusSent {
		logger(ctx).Info("notification already sent, skipping", "entry_id", entry.ID)
		return nil
	}

	if err := d.deliver(ctx, entry); err != nil {
		if recErr := d.logs.RecordOutcome(ctx, entry.ID, entity.NotificationStatusFailed, err.Error()); recErr != nil {
			logger(ctx).Error("failed to record notification failure", "entry_id", entry.ID, "error", recErr)
		}

		if d.alerter != nil {
			d.alerter.AlertNotificationFailed(ctx, *entry, err.Error())
		}

		return fmt.Errorf("deliver: %w", err)
	}

	if err := d.logs.RecordOutcome(ctx, entry.ID, entity.NotificationStatusSent, ""); err != nil {
		return fmt.Errorf("logs.RecordOutcome: %w", err)
	}

	logger(ctx).Info("notification sent",
		"entry_id", entry.ID,
		"event", string(entry.EventType),
		"recipient_id", entry.RecipientID,
	)

	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, entry *entity.NotificationLogEntry) error {
	if entry.Channel != entity.ChannelEmail {
		return domain.NewError(errcodes.UnsupportedChannel,
			fmt.Sprintf("no delivery adapter for channel %s", entry.Channel))
	}

	deal, err := d.deals.GetByID(ctx, entry.DealID)
	if err != nil {
		return domain.WrapError(err, errcodes.EntityNotFound, "deal not found")
	}

	product, err := d.products.GetByID(ctx, deal.ProductID)
	if err != nil {
		return domain.WrapError(err, errcodes.EntityNotFound, "product not found")
	}

	recipient, err := d.users.GetByID(ctx, entry.RecipientID)
	if err != nil {
		return domain.WrapError(err, errcodes.EntityNotFound, "recipient not found")
	}

	otherParty, err := d.users.GetByID(ctx, deal.OtherPartyID(recipient.ID))
	if err != nil {
		return domain.WrapError(err, errcodes.EntityNotFound, "other party not found")
	}

	if !recipient.HasContactFor(entry.Channel) {
		return domain.NewError(errcodes.MissingContactInfo, "recipient has no email address")
	}

	msg := template.Render(entry.EventType, recipient.Language, template.Data{
		RecipientName:  recipient.Name,
		RecipientRole:  recipient.Role,
		ProductName:    product.CropName,
		DealID:         deal.ID,
		OtherPartyName: otherParty.Name,
	})

	// Bound every attempt so a slow SMTP peer cannot starve the dispatcher.
	sendCtx, cancel := context.WithTimeout(ctx, d.deliveryTimeout)
	defer cancel()

	if err := d.mailer.Send(sendCtx, recipient.Email, msg.Subject, msg.PlainText, msg.HTML); err != nil {
		return domain.WrapError(err, errcodes.DeliveryFailed, "email delivery failed")
	}

	return nil
}
