package server

import (
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/pkg/lox"
	"github.com/sanjanb/k-tech-nain/pkg/rest"
)

func newRESTProduct(product entity.Product) rest.Product {
	return rest.Product{
		ID:        product.ID,
		FarmerID:  product.FarmerID,
		CropName:  product.CropName,
		Price:     product.Price,
		Quantity:  product.Quantity,
		UpiID:     product.UpiID,
		Location:  product.Location,
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func newRESTProducts(products []entity.Product) []rest.Product {
	return lox.Map(products, newRESTProduct)
}

func newRESTDeal(deal entity.Deal) rest.Deal {
	return rest.Deal{
		ID:              deal.ID,
		BuyerID:         deal.BuyerID,
		FarmerID:        deal.FarmerID,
		ProductID:       deal.ProductID,
		BuyerConfirmed:  deal.BuyerConfirmed,
		FarmerConfirmed: deal.FarmerConfirmed,
		State:           string(deal.State()),
		CreatedAt:       deal.CreatedAt,
	}
}

func newRESTDeals(deals []entity.Deal) []rest.Deal {
	return lox.Map(deals, newRESTDeal)
}

func newRESTNotification(entry entity.NotificationLogEntry) rest.NotificationLogEntry {
	return rest.NotificationLogEntry{
		ID:            entry.ID,
		EventType:     string(entry.EventType),
		DealID:        entry.DealID,
		RecipientID:   entry.RecipientID,
		Channel:       string(entry.Channel),
		Status:        string(entry.Status),
		Attempts:      entry.Attempts,
		CreatedAt:     entry.CreatedAt,
		LastAttemptAt: entry.LastAttemptAt,
		SentAt:        entry.SentAt,
		ErrorMessage:  entry.ErrorMessage,
	}
}

func newRESTNotifications(entries []entity.NotificationLogEntry) []rest.NotificationLogEntry {
	return lox.Map(entries, newRESTNotification)
}

func newRESTUser(user entity.User) rest.User {
	return rest.User{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     string(user.Role),
		Language: string(user.Language),
		UpiID:    user.UpiID,
		Verified: user.Verified,
	}
}
