package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
	"github.com/lightbnb/lightbnb/internal/validation"
)

// PropertyHandler serves property search and creation endpoints.
type PropertyHandler struct {
	server     *server.Server
	properties *repository.PropertyRepository
}

// NewPropertyHandler constructs a PropertyHandler.
func NewPropertyHandler(s *server.Server, properties *repository.PropertyRepository) *PropertyHandler {
	return &PropertyHandler{server: s, properties: properties}
}

// createPropertyRequest mirrors the insertable property columns.
// CostPerNight is in cents.
type createPropertyRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"required,url"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"required,url"`
	CostPerNight      int64  `json:"cost_per_night" validate:"required,gt=0"`
	Street            string `json:"street" validate:"required"`
	City              string `json:"city" validate:"required"`
	Province          string `json:"province" validate:"required"`
	PostCode          string `json:"post_code" validate:"required"`
	Country           string `json:"country" validate:"required"`
	ParkingSpaces     int32  `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms" validate:"gte=0"`
}

type searchPropertiesResponse struct {
	Properties any `json:"properties"`
}

// queryInt64 parses an optional integer query parameter, returning nil when
// the parameter is absent.
func queryInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errs.NewBadRequestError(name+" must be an integer", false, nil, nil)
	}
	return &value, nil
}

// queryFloat64 parses an optional numeric query parameter, returning nil
// when the parameter is absent.
func queryFloat64(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errs.NewBadRequestError(name+" must be a number", false, nil, nil)
	}
	return &value, nil
}

// queryLimit parses the optional limit parameter; absent or invalid means 0,
// which the repository treats as the default.
func queryLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errs.NewBadRequestError("limit must be a non-negative integer", false, nil, nil)
	}
	return limit, nil
}

// Search lists properties matching the filter query parameters: owner_id,
// city (substring match), minimum_price_per_night and
// maximum_price_per_night (whole currency units), minimum_rating, limit.
func (h *PropertyHandler) Search(c echo.Context) error {
	var filter repository.PropertyFilter
	var err error

	if filter.OwnerID, err = queryInt64(c, "owner_id"); err != nil {
		return err
	}
	filter.City = c.QueryParam("city")
	if filter.MinPricePerNight, err = queryInt64(c, "minimum_price_per_night"); err != nil {
		return err
	}
	if filter.MaxPricePerNight, err = queryInt64(c, "maximum_price_per_night"); err != nil {
		return err
	}
	if filter.MinRating, err = queryFloat64(c, "minimum_rating"); err != nil {
		return err
	}

	limit, err := queryLimit(c)
	if err != nil {
		return err
	}

	results, err := h.properties.Search(c.Request().Context(), filter, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchPropertiesResponse{Properties: results})
}

// Create inserts a property owned by the authenticated user.
func (h *PropertyHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errs.NewUnauthorizedError("Authentication required", false)
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewBadRequestError("Invalid request body", false, nil, nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	property, err := h.properties.Create(c.Request().Context(), repository.NewProperty{
		OwnerID:           userID,
		Title:             req.Title,
		Description:       req.Description,
		ThumbnailPhotoURL: req.ThumbnailPhotoURL,
		CoverPhotoURL:     req.CoverPhotoURL,
		CostPerNight:      req.CostPerNight,
		Street:            req.Street,
		City:              req.City,
		Province:          req.Province,
		PostCode:          req.PostCode,
		Country:           req.Country,
		ParkingSpaces:     req.ParkingSpaces,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfBedrooms:  req.NumberOfBedrooms,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, property)
}
