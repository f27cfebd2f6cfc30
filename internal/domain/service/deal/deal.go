package deal

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/notification"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

const (
	productCacheTTL     = 5 * time.Minute
	productCacheCleanup = 10 * time.Minute
)

// DealRepository persists deals. SetConfirmed must flip exactly one
// confirmation flag under a row lock and report whether anything changed.
type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	GetByID(ctx context.Context, id string) (*entity.Deal, error)
	ExistsForBuyerAndProduct(ctx context.Context, buyerID, productID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]entity.Deal, error)
	SetConfirmed(ctx context.Context, dealID string, party value.Role) (previous, current entity.Deal, changed bool, err error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

// NotificationQueue receives the state-change events this service produces.
type NotificationQueue interface {
	QueueForDeal(ctx context.Context, event entity.EventType, deal entity.Deal) []entity.NotificationLogEntry
}

// Service is the deal state machine: Pending → PartiallyConfirmed →
// Completed, each confirmation a one-way flag flip. Every successful
// confirmation is compared against the prior snapshot and the resulting
// event, if any, is handed to the notification queue.
type Service struct {
	deals        DealRepository
	products     ProductRepository
	queue        NotificationQueue
	productCache *cache.Cache
}

func NewService(
	deals DealRepository,
	products ProductRepository,
	queue NotificationQueue,
) *Service {
	return &Service{
		deals:        deals,
		products:     products,
		queue:        queue,
		productCache: cache.New(productCacheTTL, productCacheCleanup),
	}
}

// Create records a buyer's interest in a product as a new Pending deal.
func (s *Service) Create(ctx context.Context, buyerID, productID string) (*entity.Deal, error) {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if product.FarmerID == buyerID {
		return nil, domain.NewError(errcodes.SelfDeal, "you cannot create a deal for your own product")
	}

	exists, err := s.deals.ExistsForBuyerAndProduct(ctx, buyerID, productID)
	if err != nil {
		return nil, fmt.Errorf("check existing deal: %w", err)
	}

	if exists {
		return nil, domain.NewError(errcodes.DuplicateDeal, "you have already expressed interest in this product")
	}

	deal := &entity.Deal{
		ID:        xid.New().String(),
		BuyerID:   buyerID,
		FarmerID:  product.FarmerID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	if err := s.deals.Create(ctx, deal); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	logger(ctx).Info("deal created",
		"deal_id", deal.ID,
		"buyer_id", buyerID,
		"product_id", productID,
	)

	return deal, nil
}

// ConfirmAsBuyer sets the buyer's confirmation flag. Confirming twice is a
// no-op, not an error: the second call returns the unchanged deal.
func (s *Service) ConfirmAsBuyer(ctx context.Context, dealID, actorID string) (*entity.Deal, error) {
	return s.confirm(ctx, dealID, actorID, value.RoleBuyer)
}

// ConfirmAsFarmer is the farmer-side counterpart of ConfirmAsBuyer.
func (s *Service) ConfirmAsFarmer(ctx context.Context, dealID, actorID string) (*entity.Deal, error) {
	return s.confirm(ctx, dealID, actorID, value.RoleFarmer)
}

// Confirm resolves the actor's side of the deal and applies their
// confirmation. Actors who are not a party of the deal are rejected.
func (s *Service) Confirm(ctx context.Context, dealID, actorID string) (*entity.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}

	switch actorID {
	case deal.BuyerID:
		return s.confirm(ctx, dealID, actorID, value.RoleBuyer)
	case deal.FarmerID:
		return s.confirm(ctx, dealID, actorID, value.RoleFarmer)
	default:
		return nil, domain.NewError(errcodes.NotAuthorized, "you are not a party of this deal")
	}
}

func (s *Service) confirm(
	ctx context.Context,
	dealID, actorID string,
	party value.Role,
) (*entity.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}

	owner := deal.BuyerID
	if party == value.RoleFarmer {
		owner = deal.FarmerID
	}

	if actorID != owner {
		return nil, domain.NewError(errcodes.NotAuthorized, "you are not allowed to confirm this side of the deal")
	}

	previous, current, changed, err := s.deals.SetConfirmed(ctx, dealID, party)
	if err != nil {
		return nil, fmt.Errorf("set confirmed: %w", err)
	}

	if !changed {
		logger(ctx).Info("deal already confirmed by party",
			"deal_id", dealID,
			"party", party.String(),
		)
		return &current, nil
	}

	logger(ctx).Info("deal confirmed by party",
		"deal_id", dealID,
		"party", party.String(),
		"state", string(current.State()),
	)

	if event, ok := notification.Classify(previous, current); ok {
		s.queue.QueueForDeal(ctx, event, current)
	}

	return &current, nil
}

// GetForUser returns a deal if the user is one of its parties.
func (s *Service) GetForUser(ctx context.Context, dealID, userID string) (*entity.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}

	if !deal.IsParty(userID) {
		return nil, domain.NewError(errcodes.NotAuthorized, "you are not a party of this deal")
	}

	return deal, nil
}

// ListForUser returns every deal the user participates in, either side.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]entity.Deal, error) {
	deals, err := s.deals.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}

	return deals, nil
}

func (s *Service) getProduct(ctx context.Context, productID string) (*entity.Product, error) {
	if cached, found := s.productCache.Get(productID); found {
		product := cached.(entity.Product)
		return &product, nil
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.productCache.Set(productID, *product, cache.DefaultExpiration)

	return product, nil
}
