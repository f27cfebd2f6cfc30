package persistence_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
	"github.com/sanjanb/k-tech-nain/internal/infrastructure/persistence"
	"github.com/sanjanb/k-tech-nain/pkg/dbtest"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

// testDB connects to the database named by TEST_PG_DSN and applies the
// schema. Tests are skipped when the variable is unset so the suite stays
// runnable without infrastructure.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/0001_init.sql"))

	return db
}

type dbFixture struct {
	db       *sqlx.DB
	buyerID  string
	farmerID string
}

func newDBFixture(t *testing.T) dbFixture {
	t.Helper()

	db := testDB(t)
	ctx := context.Background()

	users := persistence.NewUserRepository(db)
	f := dbFixture{
		db:       db,
		buyerID:  xid.New().String(),
		farmerID: xid.New().String(),
	}

	require.NoError(t, users.Create(ctx, &entity.User{
		ID:        f.buyerID,
		Name:      "Anand",
		Email:     "anand@example.com",
		Role:      value.RoleBuyer,
		Language:  value.LanguageEnglish,
		CreatedAt: time.Now(),
	}))
	require.NoError(t, users.Create(ctx, &entity.User{
		ID:        f.farmerID,
		Name:      "Lakshmi",
		Email:     "lakshmi@example.com",
		Role:      value.RoleFarmer,
		Language:  value.LanguageKannada,
		CreatedAt: time.Now(),
	}))

	return f
}

func (f dbFixture) createProduct(t *testing.T) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:        xid.New().String(),
		FarmerID:  f.farmerID,
		CropName:  "Tomatoes",
		Price:     4500,
		Quantity:  "100 kg",
		UpiID:     "lakshmi@paytm",
		Location:  "Mandya",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	require.NoError(t, persistence.NewProductRepository(f.db).Create(context.Background(), product))

	return product
}

func (f dbFixture) createDeal(t *testing.T, productID string) *entity.Deal {
	t.Helper()

	deal := &entity.Deal{
		ID:        xid.New().String(),
		BuyerID:   f.buyerID,
		FarmerID:  f.farmerID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	require.NoError(t, persistence.NewDealRepository(f.db).Create(context.Background(), deal))

	return deal
}

func TestDealRepositorySetConfirmed(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newDBFixture(t)
	product := f.createProduct(t)
	deal := f.createDeal(t, product.ID)

	repo := persistence.NewDealRepository(f.db)

	previous, current, changed, err := repo.SetConfirmed(ctx, deal.ID, value.RoleBuyer)
	rq.NoError(err)
	rq.True(changed)
	rq.False(previous.BuyerConfirmed)
	rq.True(current.BuyerConfirmed)
	rq.Equal(entity.DealStatePartiallyConfirmed, current.State())

	// Second flip of the same flag reports no change.
	_, current, changed, err = repo.SetConfirmed(ctx, deal.ID, value.RoleBuyer)
	rq.NoError(err)
	rq.False(changed)
	rq.True(current.BuyerConfirmed)

	previous, current, changed, err = repo.SetConfirmed(ctx, deal.ID, value.RoleFarmer)
	rq.NoError(err)
	rq.True(changed)
	rq.False(previous.Completed())
	rq.True(current.Completed())
}

func TestDealRepositoryExistsForBuyerAndProduct(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newDBFixture(t)
	product := f.createProduct(t)

	repo := persistence.NewDealRepository(f.db)

	exists, err := repo.ExistsForBuyerAndProduct(ctx, f.buyerID, product.ID)
	rq.NoError(err)
	rq.False(exists)

	f.createDeal(t, product.ID)

	exists, err = repo.ExistsForBuyerAndProduct(ctx, f.buyerID, product.ID)
	rq.NoError(err)
	rq.True(exists)
}

func TestNotificationRepositorySentUniqueness(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newDBFixture(t)
	product := f.createProduct(t)
	deal := f.createDeal(t, product.ID)

	repo := persistence.NewNotificationRepository(f.db)

	first := &entity.NotificationLogEntry{
		ID:          xid.New().String(),
		EventType:   entity.EventDealConfirmed,
		DealID:      deal.ID,
		RecipientID: f.buyerID,
		Channel:     entity.ChannelEmail,
		Status:      entity.NotificationStatusPending,
		CreatedAt:   time.Now(),
	}
	rq.NoError(repo.Create(ctx, first))

	rq.NoError(repo.RecordOutcome(ctx, first.ID, entity.NotificationStatusSent, ""))

	stored, err := repo.GetByID(ctx, first.ID)
	rq.NoError(err)
	rq.Equal(entity.NotificationStatusSent, stored.Status)
	rq.Equal(1, stored.Attempts)
	rq.NotNil(stored.SentAt)

	sent, err := repo.HasSent(ctx, entity.EventDealConfirmed, deal.ID, f.buyerID)
	rq.NoError(err)
	rq.True(sent)

	// A second entry for the same tuple is rejected once one is SENT.
	second := *first
	second.ID = xid.New().String()
	err = repo.Create(ctx, &second)
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.DuplicateNotification))
}

func TestNotificationRepositoryFailureOutcome(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newDBFixture(t)
	product := f.createProduct(t)
	deal := f.createDeal(t, product.ID)

	repo := persistence.NewNotificationRepository(f.db)

	entry := &entity.NotificationLogEntry{
		ID:          xid.New().String(),
		EventType:   entity.EventDealConfirmed,
		DealID:      deal.ID,
		RecipientID: f.farmerID,
		Channel:     entity.ChannelEmail,
		Status:      entity.NotificationStatusPending,
		CreatedAt:   time.Now(),
	}
	rq.NoError(repo.Create(ctx, entry))

	rq.NoError(repo.RecordOutcome(ctx, entry.ID, entity.NotificationStatusFailed, "smtp auth: boom"))

	stored, err := repo.GetByID(ctx, entry.ID)
	rq.NoError(err)
	rq.Equal(entity.NotificationStatusFailed, stored.Status)
	rq.Equal(1, stored.Attempts)
	rq.Equal("smtp auth: boom", stored.ErrorMessage)
	rq.Nil(stored.SentAt)

	// A failed tuple does not block a fresh enqueue.
	sent, err := repo.HasSent(ctx, entity.EventDealConfirmed, deal.ID, f.farmerID)
	rq.NoError(err)
	rq.False(sent)

	rq.NoError(repo.UpdateStatus(ctx, entry.ID, entity.NotificationStatusRetrying))

	stored, err = repo.GetByID(ctx, entry.ID)
	rq.NoError(err)
	rq.Equal(entity.NotificationStatusRetrying, stored.Status)
}

func TestProductRepositoryRoundTrip(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newDBFixture(t)
	product := f.createProduct(t)

	repo := persistence.NewProductRepository(f.db)

	stored, err := repo.GetByID(ctx, product.ID)
	rq.NoError(err)
	rq.Equal(product.CropName, stored.CropName)
	rq.Equal(product.Price, stored.Price)

	stored.Price = 5200
	rq.NoError(repo.Update(ctx, stored))

	updated, err := repo.GetByID(ctx, product.ID)
	rq.NoError(err)
	rq.Equal(int64(5200), updated.Price)

	_, err = repo.GetByID(ctx, fmt.Sprintf("missing-%s", xid.New()))
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.ProductNotFound))
}
