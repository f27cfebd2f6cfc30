package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/pkg/httpx/reply"
	"github.com/sanjanb/k-tech-nain/pkg/httpx/req"
	"github.com/sanjanb/k-tech-nain/pkg/rest"
)

type dealService interface {
	Create(ctx context.Context, buyerID, productID string) (*entity.Deal, error)
	Confirm(ctx context.Context, dealID, actorID string) (*entity.Deal, error)
	GetForUser(ctx context.Context, dealID, userID string) (*entity.Deal, error)
	ListForUser(ctx context.Context, userID string) ([]entity.Deal, error)
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) postV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	buyerID, err := currentUser(r)
	if err != nil {
		return err
	}

	var request rest.NewDeal

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	created, err := s.dealService.Create(ctx, buyerID, request.ProductID)
	if err != nil {
		return fmt.Errorf("dealService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTDeal(*created))

	return nil
}

func (s DealServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	deals, err := s.dealService.ListForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("dealService.ListForUser: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeals(deals))

	return nil
}

func (s DealServer) getV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	found, err := s.dealService.GetForUser(ctx, r.PathValue("id"), userID)
	if err != nil {
		return fmt.Errorf("dealService.GetForUser: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(*found))

	return nil
}

func (s DealServer) postV1DealConfirm(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	actorID, err := currentUser(r)
	if err != nil {
		return err
	}

	confirmed, err := s.dealService.Confirm(ctx, r.PathValue("id"), actorID)
	if err != nil {
		return fmt.Errorf("dealService.Confirm: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(*confirmed))

	return nil
}
