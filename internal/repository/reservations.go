package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lightbnb/lightbnb/internal/database"
	"github.com/lightbnb/lightbnb/internal/domain"
)

// ReservationRepository reads rows of the reservations table. This layer
// never creates or mutates reservations.
type ReservationRepository struct {
	db database.Querier
}

func NewReservationRepository(db database.Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// The join through property_reviews filters out reservations on properties
// that have no reviews, and the GROUP BY collapses the duplication a
// multi-review property would otherwise cause. That is inherited behavior
// kept for compatibility, not a recommendation.
const listReservationsSQL = `
SELECT reservations.*
FROM reservations
JOIN properties ON reservations.property_id = properties.id
JOIN property_reviews ON properties.id = property_reviews.property_id
WHERE reservations.guest_id = $1
GROUP BY properties.id, reservations.id
ORDER BY reservations.start_date
LIMIT $2
`

// ListForGuest returns a guest's reservations ordered by ascending start
// date, at most limit rows. A non-positive limit means the default of 10.
func (r *ReservationRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]domain.Reservation, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := r.db.Query(ctx, listReservationsSQL, guestID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying reservations: %w", err)
	}

	reservations, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Reservation])
	if err != nil {
		return nil, fmt.Errorf("collecting reservation rows: %w", err)
	}

	return reservations, nil
}
