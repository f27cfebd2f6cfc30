package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/product"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
	"github.com/sanjanb/k-tech-nain/internal/server"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
	"github.com/sanjanb/k-tech-nain/pkg/middlewarex"
	"github.com/sanjanb/k-tech-nain/pkg/rest"
	"github.com/sanjanb/k-tech-nain/pkg/tests"
)

type stubProductService struct {
	product  *entity.Product
	products []entity.Product
	err      error
}

func (s stubProductService) Create(context.Context, string, product.NewListing) (*entity.Product, error) {
	return s.product, s.err
}

func (s stubProductService) Update(context.Context, string, string, product.NewListing) (*entity.Product, error) {
	return s.product, s.err
}

func (s stubProductService) GetByID(context.Context, string) (*entity.Product, error) {
	return s.product, s.err
}

func (s stubProductService) List(context.Context, int, int) ([]entity.Product, error) {
	return s.products, s.err
}

type stubDealService struct {
	deal  *entity.Deal
	deals []entity.Deal
	err   error
}

func (s stubDealService) Create(context.Context, string, string) (*entity.Deal, error) {
	return s.deal, s.err
}

func (s stubDealService) Confirm(context.Context, string, string) (*entity.Deal, error) {
	return s.deal, s.err
}

func (s stubDealService) GetForUser(context.Context, string, string) (*entity.Deal, error) {
	return s.deal, s.err
}

func (s stubDealService) ListForUser(context.Context, string) ([]entity.Deal, error) {
	return s.deals, s.err
}

type stubNotificationService struct {
	entry   *entity.NotificationLogEntry
	entries []entity.NotificationLogEntry
	err     error
}

func (s stubNotificationService) RecipientHistory(context.Context, string, int) ([]entity.NotificationLogEntry, error) {
	return s.entries, s.err
}

func (s stubNotificationService) DealHistory(context.Context, string) ([]entity.NotificationLogEntry, error) {
	return s.entries, s.err
}

func (s stubNotificationService) Redrive(context.Context, string) (*entity.NotificationLogEntry, error) {
	return s.entry, s.err
}

type stubUserResolver struct {
	user *entity.User
	err  error
}

func (s stubUserResolver) GetByID(context.Context, string) (*entity.User, error) {
	return s.user, s.err
}

var profileUser = entity.User{
	ID:       "farmer-1",
	Name:     "Lakshmi",
	Email:    "lakshmi@example.com",
	Role:     value.RoleFarmer,
	Language: value.LanguageKannada,
	UpiID:    "lakshmi@paytm",
	Verified: true,
}

func newTestServer(
	products stubProductService,
	deals stubDealService,
	notifications stubNotificationService,
) *httptest.Server {
	r := chi.NewRouter()
	r.Use(middlewarex.TraceID, middlewarex.UserID)

	server.NewServer(
		server.NewProductServer(products),
		server.NewDealServer(deals),
		server.NewNotificationServer(notifications, deals),
		server.NewUserServer(stubUserResolver{user: &profileUser}),
	).RegisterRoutes(r)

	return httptest.NewServer(r)
}

func asUser(userID string) http.Header {
	h := http.Header{}
	h.Set("X-User-Id", userID)

	return h
}

func TestListProducts(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{products: []entity.Product{
		{ID: "product-1", FarmerID: "farmer-1", CropName: "Tomatoes", Price: 4500},
		{ID: "product-2", FarmerID: "farmer-1", CropName: "Onions", Price: 3200},
	}}, stubDealService{}, stubNotificationService{})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	var got []rest.Product

	resp, err := client.Get(ctx, "/v1/products", http.Header{}, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(got, 2)
	rq.Equal("Tomatoes", got[0].CropName)
}

func TestGetProductNotFound(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{
		err: domain.NewError(errcodes.ProductNotFound, "product not found"),
	}, stubDealService{}, stubNotificationService{})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	var errResp rest.Error

	resp, err := client.Get(ctx, "/v1/products/nope", http.Header{}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.ProductNotFound.String()), errResp.Code)
}

func TestCreateDealRequiresIdentity(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{}, stubDealService{}, stubNotificationService{})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	resp, err := client.Post(ctx, "/v1/deals", http.Header{}, rest.NewDeal{ProductID: "product-1"}, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateDeal(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{}, stubDealService{deal: &entity.Deal{
		ID:        "deal-1",
		BuyerID:   "buyer-1",
		FarmerID:  "farmer-1",
		ProductID: "product-1",
	}}, stubNotificationService{})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	var got rest.Deal

	resp, err := client.Post(ctx, "/v1/deals", asUser("buyer-1"), rest.NewDeal{ProductID: "product-1"}, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal("deal-1", got.ID)
	rq.Equal(string(entity.DealStatePending), got.State)
}

func TestCreateDealRejectsBadBody(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{}, stubDealService{}, stubNotificationService{})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	resp, err := client.PostJSON(ctx, "/v1/deals", asUser("buyer-1"), `{"productId":""}`, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestGetDealForbiddenForStranger(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{}, stubDealService{
		err: domain.NewError(errcodes.NotAuthorized, "you are not a party of this deal"),
	}, stubNotificationService{})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	var errResp rest.Error

	resp, err := client.Get(ctx, "/v1/deals/deal-1", asUser("stranger"), nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusForbidden, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.NotAuthorized.String()), errResp.Code)
}

func TestRedriveConflictOnNonFailedEntry(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{}, stubDealService{}, stubNotificationService{
		err: domain.NewError(errcodes.NotRedrivable, "entry is SENT, only FAILED entries can be re-driven"),
	})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	resp, err := client.Post(ctx, "/v1/notifications/entry-1/redrive", asUser("ops"), nil, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusConflict, resp.StatusCode)
}

func TestRedriveAccepted(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{}, stubDealService{}, stubNotificationService{
		entry: &entity.NotificationLogEntry{
			ID:     "entry-1",
			Status: entity.NotificationStatusRetrying,
		},
	})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	var got rest.NotificationLogEntry

	resp, err := client.Post(ctx, "/v1/notifications/entry-1/redrive", asUser("ops"), nil, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusAccepted, resp.StatusCode)
	rq.Equal(string(entity.NotificationStatusRetrying), got.Status)
}

func TestGetMeReturnsProfile(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(stubProductService{}, stubDealService{}, stubNotificationService{})
	defer ts.Close()

	client := tests.NewAPIClient(ts.URL, nil)

	var got rest.User

	resp, err := client.Get(ctx, "/v1/me", asUser("farmer-1"), &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("Lakshmi", got.Name)
	rq.Equal("farmer", got.Role)
	rq.True(got.Verified)
}
