package handler

import (
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
)

// Handlers is a container that groups all HTTP handlers, keeping router
// setup to a single wired object.
type Handlers struct {
	Health       *HealthHandler
	Users        *UserHandler
	Properties   *PropertyHandler
	Reservations *ReservationHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, repos *repository.Repositories) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Users:        NewUserHandler(s, repos.Users),
		Properties:   NewPropertyHandler(s, repos.Properties),
		Reservations: NewReservationHandler(s, repos.Reservations),
	}
}
