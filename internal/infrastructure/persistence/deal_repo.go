package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

type DealRepository struct {
	db *sqlx.DB
}

func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	query := `
		INSERT INTO deals (id, buyer_id, farmer_id, product_id, buyer_confirmed, farmer_confirmed, created_at)
		VALUES (:id, :buyer_id, :farmer_id, :product_id, :buyer_confirmed, :farmer_confirmed, :created_at)`

	params := map[string]any{
		"id":               deal.ID,
		"buyer_id":         deal.BuyerID,
		"farmer_id":        deal.FarmerID,
		"product_id":       deal.ProductID,
		"buyer_confirmed":  deal.BuyerConfirmed,
		"farmer_confirmed": deal.FarmerConfirmed,
		"created_at":       deal.CreatedAt,
	}

	if _, err := r.db.NamedExecContext(ctx, query, params); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.NewError(errcodes.DuplicateDeal, "deal already exists for this buyer and product")
		}
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert deal")
	}

	return nil
}

func (r *DealRepository) GetByID(ctx context.Context, id string) (*entity.Deal, error) {
	query := `
		SELECT id, buyer_id, farmer_id, product_id, buyer_confirmed, farmer_confirmed, created_at
		FROM deals
		WHERE id = $1`

	var schema dealSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get deal")
	}

	deal := schema.toDomain()

	return &deal, nil
}

func (r *DealRepository) ExistsForBuyerAndProduct(ctx context.Context, buyerID, productID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM deals WHERE buyer_id = $1 AND product_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, buyerID, productID); err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check deal existence")
	}

	return exists, nil
}

func (r *DealRepository) ListForUser(ctx context.Context, userID string) ([]entity.Deal, error) {
	query := `
		SELECT id, buyer_id, farmer_id, product_id, buyer_confirmed, farmer_confirmed, created_at
		FROM deals
		WHERE buyer_id = $1 OR farmer_id = $1
		ORDER BY created_at DESC`

	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query, userID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deals")
	}

	deals := make([]entity.Deal, 0, len(schemas))
	for i := range schemas {
		deals = append(deals, schemas[i].toDomain())
	}

	return deals, nil
}

// SetConfirmed flips one party's confirmation flag under a row lock and
// returns the snapshots before and after. The flag is only ever set, never
// cleared; setting an already-set flag reports changed=false.
func (r *DealRepository) SetConfirmed(
	ctx context.Context,
	dealID string,
	party value.Role,
) (previous, current entity.Deal, changed bool, err error) {
	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			SELECT id, buyer_id, farmer_id, product_id, buyer_confirmed, farmer_confirmed, created_at
			FROM deals
			WHERE id = $1
			FOR UPDATE`

		var schema dealSchema
		if err := tx.GetContext(ctx, &schema, query, dealID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewError(errcodes.DealNotFound, "deal not found")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to lock deal")
		}

		previous = schema.toDomain()
		current = previous

		column := "buyer_confirmed"
		alreadySet := previous.BuyerConfirmed
		if party == value.RoleFarmer {
			column = "farmer_confirmed"
			alreadySet = previous.FarmerConfirmed
		}

		if alreadySet {
			return nil
		}

		updateQuery := `UPDATE deals SET ` + column + ` = TRUE WHERE id = $1`

		if _, err := tx.ExecContext(ctx, updateQuery, dealID); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update confirmation")
		}

		if party == value.RoleFarmer {
			current.FarmerConfirmed = true
		} else {
			current.BuyerConfirmed = true
		}

		changed = true

		return nil
	})
	if err != nil {
		return entity.Deal{}, entity.Deal{}, false, err
	}

	return previous, current, changed, nil
}
