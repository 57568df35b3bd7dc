package listingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Listing
	}{
		{
			name: "Listing found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "host_id", "title", "nightly_price", "created_at"}).
					AddRow(42, 9, "Beachfront studio", 2500.0, now)
				mock.ExpectQuery(regexp.QuoteMeta("FROM listings WHERE id = $1")).
					WithArgs(42).
					WillReturnRows(rows)
			},
			result: &domain.Listing{
				ID:           42,
				HostID:       9,
				Title:        "Beachfront studio",
				NightlyPrice: 2500,
				CreatedAt:    now,
			},
		},
		{
			name: "Listing not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM listings WHERE id = $1")).
					WithArgs(42).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM listings WHERE id = $1")).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.FindByID(context.Background(), 42)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
