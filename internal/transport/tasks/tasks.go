package tasks

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	// TypeNotificationDeliver is the asynq task type for delivering one
	// notification log entry.
	TypeNotificationDeliver = "notification:deliver"

	// QueueNotifications is the asynq queue all delivery tasks go to.
	QueueNotifications = "notifications"
)

type notificationDeliverPayload struct {
	EntryID string `json:"entryId"`
}
