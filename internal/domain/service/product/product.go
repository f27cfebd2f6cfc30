package product

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

type Repository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]entity.Product, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]entity.Product, error)
}

// Service owns the produce catalog: listings created and edited by farmers,
// browsed by everyone.
type Service struct {
	products Repository
}

func NewService(products Repository) *Service {
	return &Service{products: products}
}

// NewListing is the farmer's input for a new product.
type NewListing struct {
	CropName string
	Price    int64
	Quantity string
	UpiID    string
	Location string
	ImageURL string
}

func (s *Service) Create(ctx context.Context, farmerID string, listing NewListing) (*entity.Product, error) {
	upi, err := value.ParseUPIID(listing.UpiID)
	if err != nil {
		return nil, fmt.Errorf("parse upi id: %w", err)
	}

	if listing.CropName == "" {
		return nil, domain.NewError(errcodes.InvalidProduct, "crop name is required")
	}

	if listing.Price <= 0 {
		return nil, domain.NewError(errcodes.InvalidProduct, "price must be positive")
	}

	now := time.Now()
	product := &entity.Product{
		ID:        xid.New().String(),
		FarmerID:  farmerID,
		CropName:  listing.CropName,
		Price:     listing.Price,
		Quantity:  listing.Quantity,
		UpiID:     upi.String(),
		Location:  listing.Location,
		ImageURL:  listing.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	logger(ctx).Info("product listed", "product_id", product.ID, "farmer_id", farmerID)

	return product, nil
}

// Update edits a listing. Only the owning farmer may edit it.
func (s *Service) Update(ctx context.Context, productID, farmerID string, listing NewListing) (*entity.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if product.FarmerID != farmerID {
		return nil, domain.NewError(errcodes.Forbidden, "you do not own this product")
	}

	upi, err := value.ParseUPIID(listing.UpiID)
	if err != nil {
		return nil, fmt.Errorf("parse upi id: %w", err)
	}

	if listing.CropName == "" {
		return nil, domain.NewError(errcodes.InvalidProduct, "crop name is required")
	}

	if listing.Price <= 0 {
		return nil, domain.NewError(errcodes.InvalidProduct, "price must be positive")
	}

	product.CropName = listing.CropName
	product.Price = listing.Price
	product.Quantity = listing.Quantity
	product.UpiID = upi.String()
	product.Location = listing.Location
	product.ImageURL = listing.ImageURL
	product.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

func (s *Service) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]entity.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	if offset < 0 {
		return nil, domain.NewError(errcodes.InvalidPaging, "offset must not be negative")
	}

	products, err := s.products.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (s *Service) ListByFarmer(ctx context.Context, farmerID string) ([]entity.Product, error) {
	products, err := s.products.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("list products by farmer: %w", err)
	}

	return products, nil
}
