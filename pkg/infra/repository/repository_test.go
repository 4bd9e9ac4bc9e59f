package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/NeuralTrust/Marketplace/pkg/dberrors"
	"github.com/NeuralTrust/Marketplace/pkg/domain"
	"github.com/NeuralTrust/Marketplace/pkg/domain/customer"
	"github.com/NeuralTrust/Marketplace/pkg/domain/order"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestProductRepository_GetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 AND tenant_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), "tenant-a", id)

	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
	assert.True(t, dberrors.IsDatabaseError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec(`INSERT INTO "customers"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &customer.Customer{
		TenantID: "tenant-a",
		Name:     "Ada",
		Email:    "ada@example.com",
	})

	require.Error(t, err)
	var de *dberrors.DriverError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, dberrors.CodeUniqueViolation, de.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_PlaceCommits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	o := newOrder(2)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "products" SET "stock"=stock - \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Place(context.Background(), o))
	assert.NotEqual(t, uuid.Nil, o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_PlaceRollsBackWithoutStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "products" SET "stock"=stock - \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Place(context.Background(), newOrder(50))

	assert.ErrorIs(t, err, domain.ErrStockUpdateFailed)
	assert.False(t, dberrors.IsDatabaseError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_PlaceRollsBackOnInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	err := repo.Place(context.Background(), newOrder(1))

	require.True(t, dberrors.IsDatabaseError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate_PassesOtherErrors(t *testing.T) {
	base := errors.New("connection refused")
	err := translate("product", uuid.Nil, base)

	assert.ErrorIs(t, err, base)
	assert.False(t, dberrors.IsDatabaseError(err))
	assert.Nil(t, translate("product", uuid.Nil, nil))
}

func newOrder(quantity int) *order.Order {
	return &order.Order{
		TenantID:    "tenant-a",
		OrderNumber: 7,
		CustomerID:  uuid.New(),
		ProductID:   uuid.New(),
		Quantity:    quantity,
	}
}
