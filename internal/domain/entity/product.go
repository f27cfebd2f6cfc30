package entity

import "time"

// Product is a farmer's produce listing. Price is stored in paise.
type Product struct {
	ID        string
	FarmerID  string
	CropName  string
	Price     int64
	Quantity  string
	UpiID     string
	Location  string
	ImageURL  string // optional
	CreatedAt time.Time
	UpdatedAt time.Time
}
