package listingrepo

import (
	"context"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Listings are owned by the catalog side of the platform; this repository is
// the engine's read-only view of them.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.Listing, error) {
	var listing domain.Listing
	query := `
        SELECT id, host_id, title, nightly_price, created_at
        FROM listings
        WHERE id = $1
    `
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&listing.ID, &listing.HostID, &listing.Title, &listing.NightlyPrice, &listing.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find listing", zap.Error(err))
		return nil, err
	}
	return &listing, nil
}
