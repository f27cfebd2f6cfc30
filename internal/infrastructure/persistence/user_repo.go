package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

// UserRepository reads user records provisioned by the identity provider.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, role, language, upi_id, verified, created_at`

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var schema userSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.UserNotFound, "user not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get user")
	}

	user := schema.toDomain()

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :name, :email, :role, :language, :upi_id, :verified, :created_at)`

	var email, language, upiID any
	if user.Email != "" {
		email = user.Email
	}
	if user.Language != "" {
		language = user.Language.String()
	}
	if user.UpiID != "" {
		upiID = user.UpiID
	}

	params := map[string]any{
		"id":         user.ID,
		"name":       user.Name,
		"email":      email,
		"role":       user.Role.String(),
		"language":   language,
		"upi_id":     upiID,
		"verified":   user.Verified,
		"created_at": user.CreatedAt,
	}

	if _, err := r.db.NamedExecContext(ctx, query, params); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert user")
	}

	return nil
}
