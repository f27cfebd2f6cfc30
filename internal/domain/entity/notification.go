package entity

import "time"

// EventType names a deal-lifecycle transition that produces notifications.
type EventType string

const (
	EventDealConfirmed EventType = "DEAL_CONFIRMED"
	// EventDealCompleted is reserved for a future explicit completion step.
	// No transition emits it today: completion coincides with confirmation.
	EventDealCompleted EventType = "DEAL_COMPLETED"
)

// Channel is the delivery medium of a notification.
type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	// ChannelSMS is named but has no delivery adapter yet.
	ChannelSMS Channel = "SMS"
)

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "PENDING"
	NotificationStatusSent     NotificationStatus = "SENT"
	NotificationStatusFailed   NotificationStatus = "FAILED"
	NotificationStatusRetrying NotificationStatus = "RETRYING"
)

// NotificationLogEntry is the durable record of one attempt to notify one
// recipient about one event. Its shape is the contract between the enqueue
// side and the dispatcher; for a given (EventType, DealID, RecipientID) at
// most one entry ever reaches SENT.
type NotificationLogEntry struct {
	ID            string
	EventType     EventType
	DealID        string
	RecipientID   string
	Channel       Channel
	Status        NotificationStatus
	Attempts      int
	CreatedAt     time.Time
	LastAttemptAt *time.Time
	SentAt        *time.Time
	ErrorMessage  string
}
