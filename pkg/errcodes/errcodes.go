package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Deal lifecycle.
	DealNotFound     failure.ErrorCode = "DealNotFound"
	DuplicateDeal    failure.ErrorCode = "DuplicateDeal" // deal for this (buyer, product) already exists
	SelfDeal         failure.ErrorCode = "SelfDeal"      // farmer expressing interest in own product
	NotAuthorized    failure.ErrorCode = "NotAuthorized" // actor is not the respective party of the deal

	// Notification pipeline.
	DuplicateNotification failure.ErrorCode = "DuplicateNotification" // tuple already SENT, soft no-op
	NotificationNotFound  failure.ErrorCode = "NotificationNotFound"
	EntityNotFound        failure.ErrorCode = "EntityNotFound" // dispatcher resolution miss
	MissingContactInfo    failure.ErrorCode = "MissingContactInfo"
	DeliveryFailed        failure.ErrorCode = "DeliveryFailed"
	UnsupportedChannel    failure.ErrorCode = "UnsupportedChannel"
	NotRedrivable         failure.ErrorCode = "NotRedrivable" // only FAILED entries may be re-driven

	// Catalog.
	ProductNotFound failure.ErrorCode = "ProductNotFound"
	UserNotFound    failure.ErrorCode = "UserNotFound"
	InvalidProduct  failure.ErrorCode = "InvalidProduct"
	InvalidUpiID    failure.ErrorCode = "InvalidUpiID"
	InvalidDealID   failure.ErrorCode = "InvalidDealID"
	InvalidUserID   failure.ErrorCode = "InvalidUserID"
	InvalidLanguage failure.ErrorCode = "InvalidLanguage"
	InvalidPaging   failure.ErrorCode = "InvalidPaging"
)
