package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/lightbnb/lightbnb/internal/database"
	"github.com/lightbnb/lightbnb/internal/domain"
)

// PropertyFilter is the closed set of optional search filters.
//
// Prices are given in whole currency units and compared against
// cost_per_night, which is stored in cents; the conversion happens inside
// the query builder. MinRating filters on the aggregated average review
// rating, so it becomes a HAVING clause rather than a WHERE predicate.
type PropertyFilter struct {
	OwnerID          *int64
	City             string
	MinPricePerNight *int64
	MaxPricePerNight *int64
	MinRating        *float64
}

// NewProperty is the payload for creating a property. CostPerNight must
// already be in cents; unlike the search filters, no scaling is applied
// here.
type NewProperty struct {
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      int64
	Street            string
	City              string
	Province          string
	PostCode          string
	Country           string
	ParkingSpaces     int32
	NumberOfBathrooms int32
	NumberOfBedrooms  int32
}

// PropertyRepository reads and writes rows of the properties table.
type PropertyRepository struct {
	db database.Querier
}

func NewPropertyRepository(db database.Querier) *PropertyRepository {
	return &PropertyRepository{db: db}
}

const searchPropertiesBaseSQL = `SELECT properties.*, avg(property_reviews.rating) as average_rating
FROM properties
JOIN property_reviews ON properties.id = property_id
`

const addPropertySQL = `
INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url, cost_per_night, street, city, province, post_code, country, parking_spaces, number_of_bathrooms, number_of_bedrooms)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING *
`

// buildSearchQuery assembles the property search statement from the filter.
//
// Predicates are emitted in a fixed order (owner, city, min price, max
// price), each referencing the next positional placeholder. The first
// emitted predicate gets WHERE, every subsequent one gets AND; the keyword
// is derived from how many predicates were actually appended. MinRating is
// applied after GROUP BY as a single HAVING clause, and the row limit is
// always the final parameter.
func buildSearchQuery(f PropertyFilter, limit int) (string, []any) {
	var b strings.Builder
	b.WriteString(searchPropertiesBaseSQL)

	type predicate struct {
		clause string
		value  any
	}

	var predicates []predicate
	if f.OwnerID != nil {
		predicates = append(predicates, predicate{"owner_id = ", *f.OwnerID})
	}
	if f.City != "" {
		predicates = append(predicates, predicate{"city LIKE ", "%" + f.City + "%"})
	}
	if f.MinPricePerNight != nil {
		predicates = append(predicates, predicate{"cost_per_night >= ", *f.MinPricePerNight * 100})
	}
	if f.MaxPricePerNight != nil {
		predicates = append(predicates, predicate{"cost_per_night <= ", *f.MaxPricePerNight * 100})
	}

	args := make([]any, 0, len(predicates)+2)
	for i, p := range predicates {
		if i == 0 {
			b.WriteString("WHERE ")
		} else {
			b.WriteString("AND ")
		}
		args = append(args, p.value)
		fmt.Fprintf(&b, "%s$%d\n", p.clause, len(args))
	}

	b.WriteString("GROUP BY properties.id\n")

	if f.MinRating != nil {
		args = append(args, *f.MinRating)
		fmt.Fprintf(&b, "HAVING avg(rating) >= $%d\n", len(args))
	}

	args = append(args, limit)
	fmt.Fprintf(&b, "ORDER BY cost_per_night\nLIMIT $%d", len(args))

	return b.String(), args
}

// Search returns properties matching the filter, each augmented with the
// average rating of its reviews, ordered by ascending nightly cost and
// capped at limit rows. A non-positive limit means the default of 10.
// Properties without reviews never appear.
func (r *PropertyRepository) Search(ctx context.Context, f PropertyFilter, limit int) ([]domain.PropertySearchResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	sql, args := buildSearchQuery(f, limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.PropertySearchResult])
	if err != nil {
		return nil, fmt.Errorf("collecting property rows: %w", err)
	}

	return results, nil
}

// Create inserts a property and returns the stored row including its
// generated id.
func (r *PropertyRepository) Create(ctx context.Context, p NewProperty) (*domain.Property, error) {
	rows, err := r.db.Query(ctx, addPropertySQL,
		p.OwnerID,
		p.Title,
		p.Description,
		p.ThumbnailPhotoURL,
		p.CoverPhotoURL,
		p.CostPerNight,
		p.Street,
		p.City,
		p.Province,
		p.PostCode,
		p.Country,
		p.ParkingSpaces,
		p.NumberOfBathrooms,
		p.NumberOfBedrooms,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	property, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Property])
	if err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	return &property, nil
}
