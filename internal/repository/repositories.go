package repository

import (
	"github.com/lightbnb/lightbnb/internal/database"
)

// defaultLimit caps list and search results when the caller does not supply
// a limit.
const defaultLimit = 10

// Repositories is a container for all repository instances, so wiring code
// passes one object around instead of three.
type Repositories struct {
	Users        *UserRepository
	Reservations *ReservationRepository
	Properties   *PropertyRepository
}

// NewRepositories constructs the repository container on top of the shared
// pool (or any other Querier).
func NewRepositories(db database.Querier) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Reservations: NewReservationRepository(db),
		Properties:   NewPropertyRepository(db),
	}
}
