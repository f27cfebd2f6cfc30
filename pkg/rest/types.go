// This file should be generated from the openapi specification and named types.gen.go
package rest

import "time"

// Product is a farmer's produce listing. Price is in paise.
type Product struct {
	ID        string    `json:"id"`
	FarmerID  string    `json:"farmerId"`
	CropName  string    `json:"cropName"`
	Price     int64     `json:"price"`
	Quantity  string    `json:"quantity"`
	UpiID     string    `json:"upiId"`
	Location  string    `json:"location"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProduct is the create/update request body for a listing.
type NewProduct struct {
	CropName string `json:"cropName" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Quantity string `json:"quantity" validate:"required"`
	UpiID    string `json:"upiId" validate:"required"`
	Location string `json:"location" validate:"required"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Deal is one buyer's interest in one product, with derived state.
type Deal struct {
	ID              string    `json:"id"`
	BuyerID         string    `json:"buyerId"`
	FarmerID        string    `json:"farmerId"`
	ProductID       string    `json:"productId"`
	BuyerConfirmed  bool      `json:"buyerConfirmed"`
	FarmerConfirmed bool      `json:"farmerConfirmed"`
	State           string    `json:"state"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewDeal is the request body expressing interest in a product.
type NewDeal struct {
	ProductID string `json:"productId" validate:"required"`
}

// NotificationLogEntry is one attempt to notify one recipient about one event.
type NotificationLogEntry struct {
	ID            string     `json:"id"`
	EventType     string     `json:"eventType"`
	DealID        string     `json:"dealId"`
	RecipientID   string     `json:"recipientId"`
	Channel       string     `json:"channel"`
	Status        string     `json:"status"`
	Attempts      int        `json:"attempts"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastAttemptAt *time.Time `json:"lastAttemptAt,omitempty"`
	SentAt        *time.Time `json:"sentAt,omitempty"`
	ErrorMessage  string     `json:"errorMessage,omitempty"`
}

// User is the caller's own profile.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	Language string `json:"language"`
	UpiID    string `json:"upiId,omitempty"`
	Verified bool   `json:"verified"`
}

// Error is the error response model.
type Error struct {
	// Code is the stable error code.
	Code ErrorCode `json:"code"`

	// Message is the human readable error message (for UI display).
	Message string `json:"message"`
}

// ErrorCode is the stable error code.
type ErrorCode string
