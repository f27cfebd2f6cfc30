package entity

import "time"

// DealState is derived from the two confirmation flags, never stored.
type DealState string

const (
	DealStatePending            DealState = "PENDING"
	DealStatePartiallyConfirmed DealState = "PARTIALLY_CONFIRMED"
	DealStateCompleted          DealState = "COMPLETED"
)

// Deal records one buyer's expressed interest in one farmer's product.
// Each party sets their confirmation flag exactly once; flags never revert.
type Deal struct {
	ID              string
	BuyerID         string
	FarmerID        string
	ProductID       string
	BuyerConfirmed  bool
	FarmerConfirmed bool
	CreatedAt       time.Time
}

// Completed reports whether both parties confirmed the deal.
func (d Deal) Completed() bool {
	return d.BuyerConfirmed && d.FarmerConfirmed
}

func (d Deal) State() DealState {
	switch {
	case d.BuyerConfirmed && d.FarmerConfirmed:
		return DealStateCompleted
	case d.BuyerConfirmed || d.FarmerConfirmed:
		return DealStatePartiallyConfirmed
	default:
		return DealStatePending
	}
}

// IsParty reports whether userID is the buyer or the farmer of the deal.
func (d Deal) IsParty(userID string) bool {
	return userID == d.BuyerID || userID == d.FarmerID
}

// OtherPartyID returns the counterparty for the given recipient: the farmer
// when the recipient is the buyer, the buyer otherwise.
func (d Deal) OtherPartyID(recipientID string) string {
	if recipientID == d.BuyerID {
		return d.FarmerID
	}
	return d.BuyerID
}
