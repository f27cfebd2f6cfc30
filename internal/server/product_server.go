package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/product"
	"github.com/sanjanb/k-tech-nain/pkg/httpx/reply"
	"github.com/sanjanb/k-tech-nain/pkg/httpx/req"
	"github.com/sanjanb/k-tech-nain/pkg/rest"
)

type productService interface {
	Create(ctx context.Context, farmerID string, listing product.NewListing) (*entity.Product, error)
	Update(ctx context.Context, productID, farmerID string, listing product.NewListing) (*entity.Product, error)
	GetByID(ctx context.Context, productID string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]entity.Product, error)
}

type ProductServer struct {
	productService productService
}

func NewProductServer(productService productService) ProductServer {
	return ProductServer{
		productService: productService,
	}
}

func (s ProductServer) postV1Product(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	farmerID, err := currentUser(r)
	if err != nil {
		return err
	}

	var request rest.NewProduct

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	created, err := s.productService.Create(ctx, farmerID, newDomainListing(request))
	if err != nil {
		return fmt.Errorf("productService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTProduct(*created))

	return nil
}

func (s ProductServer) getV1Products(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit := queryInt(r, "limit")
	offset := queryInt(r, "offset")

	products, err := s.productService.List(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("productService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProducts(products))

	return nil
}

func (s ProductServer) getV1Product(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	found, err := s.productService.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("productService.GetByID: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProduct(*found))

	return nil
}

func (s ProductServer) putV1Product(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	farmerID, err := currentUser(r)
	if err != nil {
		return err
	}

	var request rest.NewProduct

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	updated, err := s.productService.Update(ctx, r.PathValue("id"), farmerID, newDomainListing(request))
	if err != nil {
		return fmt.Errorf("productService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProduct(*updated))

	return nil
}

func newDomainListing(request rest.NewProduct) product.NewListing {
	return product.NewListing{
		CropName: request.CropName,
		Price:    request.Price,
		Quantity: request.Quantity,
		UpiID:    request.UpiID,
		Location: request.Location,
		ImageURL: request.ImageURL,
	}
}

// queryInt parses an integer query parameter, zero when absent or malformed.
// The services clamp and validate real bounds.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}
