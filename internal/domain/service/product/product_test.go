package product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/product"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

type repoStub struct {
	products  map[string]*entity.Product
	listLimit int
}

func newRepoStub() *repoStub {
	return &repoStub{products: make(map[string]*entity.Product)}
}

func (s *repoStub) Create(_ context.Context, p *entity.Product) error {
	stored := *p
	s.products[p.ID] = &stored

	return nil
}

func (s *repoStub) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.NewError(errcodes.ProductNotFound, "product not found")
	}

	found := *p

	return &found, nil
}

func (s *repoStub) Update(_ context.Context, p *entity.Product) error {
	if _, ok := s.products[p.ID]; !ok {
		return domain.NewError(errcodes.ProductNotFound, "product not found")
	}

	stored := *p
	s.products[p.ID] = &stored

	return nil
}

func (s *repoStub) List(_ context.Context, limit, _ int) ([]entity.Product, error) {
	s.listLimit = limit

	var out []entity.Product
	for _, p := range s.products {
		out = append(out, *p)
	}

	return out, nil
}

func (s *repoStub) ListByFarmer(_ context.Context, farmerID string) ([]entity.Product, error) {
	var out []entity.Product

	for _, p := range s.products {
		if p.FarmerID == farmerID {
			out = append(out, *p)
		}
	}

	return out, nil
}

func listing() product.NewListing {
	return product.NewListing{
		CropName: "Tomatoes",
		Price:    4500,
		Quantity: "100 kg",
		UpiID:    "Lakshmi@paytm",
		Location: "Mandya",
	}
}

func TestCreateListing(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := newRepoStub()
	svc := product.NewService(repo)

	created, err := svc.Create(ctx, "farmer-1", listing())
	rq.NoError(err)
	rq.NotEmpty(created.ID)
	rq.Equal("farmer-1", created.FarmerID)
	rq.Equal("lakshmi@paytm", created.UpiID)
	rq.False(created.CreatedAt.IsZero())
}

func TestCreateListingValidation(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := product.NewService(newRepoStub())

	bad := listing()
	bad.UpiID = "nope"
	_, err := svc.Create(ctx, "farmer-1", bad)
	rq.True(domain.HasCode(err, errcodes.InvalidUpiID))

	bad = listing()
	bad.CropName = ""
	_, err = svc.Create(ctx, "farmer-1", bad)
	rq.True(domain.HasCode(err, errcodes.InvalidProduct))

	bad = listing()
	bad.Price = 0
	_, err = svc.Create(ctx, "farmer-1", bad)
	rq.True(domain.HasCode(err, errcodes.InvalidProduct))
}

func TestUpdateRequiresOwnership(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := newRepoStub()
	svc := product.NewService(repo)

	created, err := svc.Create(ctx, "farmer-1", listing())
	rq.NoError(err)

	_, err = svc.Update(ctx, created.ID, "farmer-2", listing())
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.Forbidden))

	updated := listing()
	updated.Price = 5000

	got, err := svc.Update(ctx, created.ID, "farmer-1", updated)
	rq.NoError(err)
	rq.Equal(int64(5000), got.Price)
}

func TestListClampsLimit(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := newRepoStub()
	svc := product.NewService(repo)

	_, err := svc.List(ctx, 0, 0)
	rq.NoError(err)
	rq.Equal(50, repo.listLimit)

	_, err = svc.List(ctx, 500, 0)
	rq.NoError(err)
	rq.Equal(50, repo.listLimit)

	_, err = svc.List(ctx, 10, 0)
	rq.NoError(err)
	rq.Equal(10, repo.listLimit)

	_, err = svc.List(ctx, 10, -1)
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.InvalidPaging))
}
