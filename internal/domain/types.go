// Package domain holds the entity types shared across the application.
//
// These structs mirror the database schema one-to-one; the `db` tags are
// consumed by pgx's struct row mapping.
package domain

import "time"

// User is a row of the users table. Password holds the bcrypt hash, never
// plaintext, and is excluded from JSON output.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}

// Property is a row of the properties table.
//
// CostPerNight is stored in minor currency units (cents).
type Property struct {
	ID                int64  `db:"id" json:"id"`
	OwnerID           int64  `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int64  `db:"cost_per_night" json:"cost_per_night"`
	ParkingSpaces     int32  `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int32  `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Country           string `db:"country" json:"country"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
	Active            bool   `db:"active" json:"active"`
}

// PropertySearchResult is a property row augmented with the mean rating of
// its reviews, as produced by the property search query. Properties without
// reviews never appear in search results (inner join).
type PropertySearchResult struct {
	Property
	AverageRating float64 `db:"average_rating" json:"average_rating"`
}

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int64     `db:"id" json:"id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	GuestID    int64     `db:"guest_id" json:"guest_id"`
}
