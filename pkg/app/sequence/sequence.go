package sequence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NeuralTrust/Marketplace/pkg/infra/database"
	"gorm.io/gorm"
)

type Options struct {
	Kind     string
	Sequence string
	Table    string
	Field    string
}

// Helper hands out the next business number for a table. Postgres uses a
// real sequence; the lightweight dialects fall back to MAX+1.
type Helper struct {
	db   *gorm.DB
	opts Options
}

func NewHelper(db *gorm.DB, opts Options) *Helper {
	return &Helper{db: db, opts: opts}
}

func (h *Helper) Next(ctx context.Context) (int64, error) {
	switch h.opts.Kind {
	case database.KindPostgres:
		return h.nextFromSequence(ctx)
	case database.KindSQL, database.KindSQLite:
		return h.nextFromMax(ctx)
	default:
		return 0, fmt.Errorf("unsupported DB kind --> %s", h.opts.Kind)
	}
}

func (h *Helper) nextFromSequence(ctx context.Context) (int64, error) {
	var next int64
	err := h.db.WithContext(ctx).
		Raw("SELECT nextval(?)", h.opts.Sequence).
		Row().
		Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next value of %s: %w", h.opts.Sequence, err)
	}
	return next, nil
}

func (h *Helper) nextFromMax(ctx context.Context) (int64, error) {
	var current sql.NullInt64
	query := fmt.Sprintf(`SELECT MAX(%q) FROM %q`, h.opts.Field, h.opts.Table)
	if err := h.db.WithContext(ctx).Raw(query).Row().Scan(&current); err != nil {
		return 0, fmt.Errorf("max of %s.%s: %w", h.opts.Table, h.opts.Field, err)
	}
	return current.Int64 + 1, nil
}
