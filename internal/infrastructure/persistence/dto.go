package persistence

import (
	"database/sql"
	"time"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
)

type dealSchema struct {
	ID              string    `db:"id"`
	BuyerID         string    `db:"buyer_id"`
	FarmerID        string    `db:"farmer_id"`
	ProductID       string    `db:"product_id"`
	BuyerConfirmed  bool      `db:"buyer_confirmed"`
	FarmerConfirmed bool      `db:"farmer_confirmed"`
	CreatedAt       time.Time `db:"created_at"`
}

func (s *dealSchema) toDomain() entity.Deal {
	return entity.Deal{
		ID:              s.ID,
		BuyerID:         s.BuyerID,
		FarmerID:        s.FarmerID,
		ProductID:       s.ProductID,
		BuyerConfirmed:  s.BuyerConfirmed,
		FarmerConfirmed: s.FarmerConfirmed,
		CreatedAt:       s.CreatedAt,
	}
}

type productSchema struct {
	ID        string         `db:"id"`
	FarmerID  string         `db:"farmer_id"`
	CropName  string         `db:"crop_name"`
	Price     int64          `db:"price"`
	Quantity  string         `db:"quantity"`
	UpiID     string         `db:"upi_id"`
	Location  string         `db:"location"`
	ImageURL  sql.NullString `db:"image_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (s *productSchema) toDomain() entity.Product {
	return entity.Product{
		ID:        s.ID,
		FarmerID:  s.FarmerID,
		CropName:  s.CropName,
		Price:     s.Price,
		Quantity:  s.Quantity,
		UpiID:     s.UpiID,
		Location:  s.Location,
		ImageURL:  s.ImageURL.String,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type userSchema struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Email     sql.NullString `db:"email"`
	Role      string         `db:"role"`
	Language  sql.NullString `db:"language"`
	UpiID     sql.NullString `db:"upi_id"`
	Verified  bool           `db:"verified"`
	CreatedAt time.Time      `db:"created_at"`
}

func (s *userSchema) toDomain() entity.User {
	return entity.User{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email.String,
		Role:      value.Role(s.Role),
		Language:  value.LanguageOrDefault(s.Language.String),
		UpiID:     s.UpiID.String,
		Verified:  s.Verified,
		CreatedAt: s.CreatedAt,
	}
}

type notificationSchema struct {
	ID            string         `db:"id"`
	EventType     string         `db:"event_type"`
	DealID        string         `db:"deal_id"`
	RecipientID   string         `db:"recipient_id"`
	Channel       string         `db:"channel"`
	Status        string         `db:"status"`
	Attempts      int            `db:"attempts"`
	CreatedAt     time.Time      `db:"created_at"`
	LastAttemptAt sql.NullTime   `db:"last_attempt_at"`
	SentAt        sql.NullTime   `db:"sent_at"`
	ErrorMessage  sql.NullString `db:"error_message"`
}

func (s *notificationSchema) toDomain() entity.NotificationLogEntry {
	e := entity.NotificationLogEntry{
		ID:           s.ID,
		EventType:    entity.EventType(s.EventType),
		DealID:       s.DealID,
		RecipientID:  s.RecipientID,
		Channel:      entity.Channel(s.Channel),
		Status:       entity.NotificationStatus(s.Status),
		Attempts:     s.Attempts,
		CreatedAt:    s.CreatedAt,
		ErrorMessage: s.ErrorMessage.String,
	}

	if s.LastAttemptAt.Valid {
		t := s.LastAttemptAt.Time
		e.LastAttemptAt = &t
	}

	if s.SentAt.Valid {
		t := s.SentAt.Time
		e.SentAt = &t
	}

	return e
}
