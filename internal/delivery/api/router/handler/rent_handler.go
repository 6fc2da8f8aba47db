package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"zeneasy/internal/delivery/api/middleware"
	"zeneasy/internal/delivery/api/response"
	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RentHandlerParams holds dependencies for RentHandler, injected by Fx.
type RentHandlerParams struct {
	fx.In

	LinkerUC usecase.LinkerUsecase
	RentUC   usecase.RentUsecase
	Logger   *slog.Logger
}

// RentHandler serves rent listings.
type RentHandler struct {
	linkerUC usecase.LinkerUsecase
	rentUC   usecase.RentUsecase
	logger   *slog.Logger
}

// NewRentHandler is the constructor for RentHandler
func NewRentHandler(params RentHandlerParams) *RentHandler {
	return &RentHandler{
		linkerUC: params.LinkerUC,
		rentUC:   params.RentUC,
		logger:   params.Logger,
	}
}

// CreateRentRequest is the body of POST /rents.
type CreateRentRequest struct {
	Category         string   `json:"category" validate:"required"`
	RentStartDate    string   `json:"rentStartDate" validate:"required"`
	Images           []string `json:"images"`
	PaymentFrequency string   `json:"paymentFrequency" validate:"required,oneof=Monthly Quarterly Yearly"`
	Details          string   `json:"details"`
	Cost             float64  `json:"cost" validate:"gte=0"`
	AddressLine      string   `json:"address" validate:"required"`
	City             string   `json:"city" validate:"required"`
	PostalCode       string   `json:"postalCode"`
	ContactInfo      string   `json:"contactInfo" validate:"required"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// UpdateRentStatusRequest is the body of PATCH /rents/:id/status.
type UpdateRentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Booked"`
}

// rentLinkPayload is the data of a successful POST /rents.
type rentLinkPayload struct {
	Rent  *entity.RentListing `json:"rent"`
	Owner *entity.User        `json:"owner"`
}

// rentPayload is one listing in a list response.
type rentPayload struct {
	*entity.RentListing
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// CreateRent creates a listing owned by the token user and links it to them.
func (h *RentHandler) CreateRent(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "A user token is required")
	}

	var req CreateRentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	startDate, err := parseDate(req.RentStartDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.linkerUC.LinkRentListing(c.Request().Context(), ownerID, &usecase.RentInput{
		Category:         entity.RentCategory(req.Category),
		RentStartDate:    startDate,
		Images:           req.Images,
		PaymentFrequency: entity.PaymentFrequency(req.PaymentFrequency),
		Details:          req.Details,
		Cost:             req.Cost,
		AddressLine:      req.AddressLine,
		City:             req.City,
		PostalCode:       req.PostalCode,
		ContactInfo:      req.ContactInfo,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, rentLinkPayload{Rent: output.Rent, Owner: output.Owner}, "Rent listing created")
}

// ListRents filters listings; lat, lng and radiusKm switch to a nearby search.
func (h *RentHandler) ListRents(c echo.Context) error {
	query, err := rentQueryFromRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.rentUC.ListRents(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]rentPayload, 0, len(list.Rents))
	for _, result := range list.Rents {
		items = append(items, rentPayload{RentListing: result.Rent, DistanceKm: result.DistanceKm})
	}

	return response.Success(c, http.StatusOK, listPayload{Items: items, Total: list.Total}, "Rent listings retrieved")
}

func rentQueryFromRequest(c echo.Context) (*usecase.RentQuery, error) {
	query := &usecase.RentQuery{
		Filter: entity.RentFilter{
			Category: entity.RentCategory(c.QueryParam("category")),
			City:     c.QueryParam("city"),
			Status:   entity.RentStatus(c.QueryParam("status")),
		},
		Page: pageFromQuery(c),
	}

	lat, lng, radius := c.QueryParam("lat"), c.QueryParam("lng"), c.QueryParam("radiusKm")
	if lat == "" && lng == "" && radius == "" {
		return query, nil
	}

	near := &usecase.GeoQuery{}
	var err error
	if near.Latitude, err = strconv.ParseFloat(lat, 64); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("lat must be a number")
	}
	if near.Longitude, err = strconv.ParseFloat(lng, 64); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("lng must be a number")
	}
	if near.RadiusKm, err = strconv.ParseFloat(radius, 64); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("radiusKm must be a number")
	}
	query.Near = near

	return query, nil
}

// GetRent returns one listing.
func (h *RentHandler) GetRent(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rent, err := h.rentUC.GetRent(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rent, "Rent listing retrieved")
}

// RentQRCode renders the share code of a listing as PNG.
func (h *RentHandler) RentQRCode(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.rentUC.RentQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListUserRents returns a user's listings.
func (h *RentHandler) ListUserRents(c echo.Context) error {
	userID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rents, err := h.rentUC.ListUserRents(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rents, "Rent listings retrieved")
}

// UpdateRentStatus marks a listing Active or Booked.
func (h *RentHandler) UpdateRentStatus(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateRentStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rent, err := h.rentUC.UpdateStatus(c.Request().Context(), middleware.GetActor(c), id, entity.RentStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rent, "Rent status updated")
}

// DeleteRent removes a listing.
func (h *RentHandler) DeleteRent(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.rentUC.DeleteRent(c.Request().Context(), middleware.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Rent listing deleted")
}
