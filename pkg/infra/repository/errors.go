package repository

import (
	"errors"
	"fmt"

	"github.com/NeuralTrust/Marketplace/pkg/dberrors"
	"github.com/NeuralTrust/Marketplace/pkg/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// translate turns driver failures into errors the dispatcher can map.
func translate(entity string, id uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError(entity, id, dberrors.NotFound(err.Error(), err))
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", entity, dberrors.FromPgError(pgErr))
	}
	return fmt.Errorf("%s: %w", entity, err)
}

func paginate(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if offset > 0 {
			db = db.Offset(offset)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}
		return db
	}
}
