package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/pkg/httpx/reply"
)

type notificationService interface {
	RecipientHistory(ctx context.Context, recipientID string, limit int) ([]entity.NotificationLogEntry, error)
	DealHistory(ctx context.Context, dealID string) ([]entity.NotificationLogEntry, error)
	Redrive(ctx context.Context, entryID string) (*entity.NotificationLogEntry, error)
}

// dealAccess gates the per-deal log behind deal party membership.
type dealAccess interface {
	GetForUser(ctx context.Context, dealID, userID string) (*entity.Deal, error)
}

type NotificationServer struct {
	notificationService notificationService
	dealAccess          dealAccess
}

func NewNotificationServer(notificationService notificationService, dealAccess dealAccess) NotificationServer {
	return NotificationServer{
		notificationService: notificationService,
		dealAccess:          dealAccess,
	}
}

func (s NotificationServer) getV1Notifications(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	entries, err := s.notificationService.RecipientHistory(ctx, userID, queryInt(r, "limit"))
	if err != nil {
		return fmt.Errorf("notificationService.RecipientHistory: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTNotifications(entries))

	return nil
}

func (s NotificationServer) getV1DealNotifications(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	dealID := r.PathValue("id")

	// Party check first: the log is visible only to the deal's participants.
	if _, err := s.dealAccess.GetForUser(ctx, dealID, userID); err != nil {
		return fmt.Errorf("dealAccess.GetForUser: %w", err)
	}

	entries, err := s.notificationService.DealHistory(ctx, dealID)
	if err != nil {
		return fmt.Errorf("notificationService.DealHistory: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTNotifications(entries))

	return nil
}

func (s NotificationServer) postV1NotificationRedrive(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if _, err := currentUser(r); err != nil {
		return err
	}

	entry, err := s.notificationService.Redrive(ctx, r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("notificationService.Redrive: %w", err)
	}

	reply.JSON(ctx, w, http.StatusAccepted, newRESTNotification(*entry))

	return nil
}
