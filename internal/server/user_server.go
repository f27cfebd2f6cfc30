package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/pkg/httpx/reply"
)

type userResolver interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

type UserServer struct {
	userResolver userResolver
}

func NewUserServer(userResolver userResolver) UserServer {
	return UserServer{userResolver: userResolver}
}

func (s UserServer) getV1Me(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	user, err := s.userResolver.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("userResolver.GetByID: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTUser(*user))

	return nil
}
