package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
)

// ReservationHandler serves the reservation listing endpoint.
type ReservationHandler struct {
	server       *server.Server
	reservations *repository.ReservationRepository
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(s *server.Server, reservations *repository.ReservationRepository) *ReservationHandler {
	return &ReservationHandler{server: s, reservations: reservations}
}

type listReservationsResponse struct {
	Reservations any `json:"reservations"`
}

// List returns the authenticated guest's reservations, earliest start date
// first, capped by the optional limit query parameter.
func (h *ReservationHandler) List(c echo.Context) error {
	guestID, ok := middleware.GetUserID(c)
	if !ok {
		return errs.NewUnauthorizedError("Authentication required", false)
	}

	limit, err := queryLimit(c)
	if err != nil {
		return err
	}

	reservations, err := h.reservations.ListForGuest(c.Request().Context(), guestID, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listReservationsResponse{Reservations: reservations})
}
