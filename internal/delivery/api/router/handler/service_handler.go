package handler

import (
	"log/slog"
	"net/http"

	"zeneasy/internal/delivery/api/middleware"
	"zeneasy/internal/delivery/api/response"
	"zeneasy/internal/domain/entity"
	"zeneasy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	LinkerUC  usecase.LinkerUsecase
	ServiceUC usecase.ServiceUsecase
	RatingUC  usecase.RatingUsecase
	Logger    *slog.Logger
}

// ServiceHandler serves professional service profiles and their ratings.
type ServiceHandler struct {
	linkerUC  usecase.LinkerUsecase
	serviceUC usecase.ServiceUsecase
	ratingUC  usecase.RatingUsecase
	logger    *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		linkerUC:  params.LinkerUC,
		serviceUC: params.ServiceUC,
		ratingUC:  params.RatingUC,
		logger:    params.Logger,
	}
}

// CreateServiceRequest is the body of POST /services.
type CreateServiceRequest struct {
	Category      string   `json:"category" validate:"required"`
	ContactNumber string   `json:"contactNumber" validate:"required"`
	AddressLine   string   `json:"address" validate:"required"`
	ServiceAreas  []string `json:"serviceAreas"`
	Description   string   `json:"description"`
	MinimumPrice  float64  `json:"minimumPrice" validate:"gte=0"`
	MaximumPrice  float64  `json:"maximumPrice" validate:"gte=0"`
	AvailableDays []string `json:"availableDays"`
	AvailableTime string   `json:"availableTime" validate:"required,oneof=day night always"`
	CoverImage    string   `json:"coverImage"`
	Certificate   string   `json:"certificate" validate:"required"`
}

// AppendRatingRequest is the body of POST /services/:id/ratings.
type AppendRatingRequest struct {
	Rating   int    `json:"rating" validate:"gte=0,lte=5"`
	Feedback string `json:"feedback"`
}

// serviceLinkPayload is the data of a successful POST /services.
type serviceLinkPayload struct {
	Service *entity.ServiceProfile `json:"service"`
	Owner   *entity.User           `json:"owner"`
}

// CreateService creates a profile provided by the token user and links it to them.
func (h *ServiceHandler) CreateService(c echo.Context) error {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "A user token is required")
	}

	var req CreateServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.linkerUC.LinkServiceProfile(c.Request().Context(), providerID, &usecase.ServiceInput{
		Category:      entity.ServiceCategory(req.Category),
		ContactNumber: req.ContactNumber,
		AddressLine:   req.AddressLine,
		ServiceAreas:  req.ServiceAreas,
		Description:   req.Description,
		MinimumPrice:  req.MinimumPrice,
		MaximumPrice:  req.MaximumPrice,
		AvailableDays: req.AvailableDays,
		AvailableTime: entity.AvailableTime(req.AvailableTime),
		CoverImage:    req.CoverImage,
		Certificate:   req.Certificate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, serviceLinkPayload{Service: output.Service, Owner: output.Owner}, "Service profile created")
}

// ListServices returns approved, active profiles, optionally by category.
func (h *ServiceHandler) ListServices(c echo.Context) error {
	list, err := h.serviceUC.ListPublic(c.Request().Context(), entity.ServiceCategory(c.QueryParam("category")), pageFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listPayload{Items: list.Services, Total: list.Total}, "Service profiles retrieved")
}

// GetService returns one profile with its ratings.
func (h *ServiceHandler) GetService(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.serviceUC.GetService(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Service profile retrieved")
}

// ListUserServices returns a user's profiles.
func (h *ServiceHandler) ListUserServices(c echo.Context) error {
	userID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profiles, err := h.serviceUC.ListUserServices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles, "Service profiles retrieved")
}

// AppendRating records the token user's rating of a profile.
func (h *ServiceHandler) AppendRating(c echo.Context) error {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "A user token is required")
	}

	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AppendRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	summary, err := h.ratingUC.AppendRating(c.Request().Context(), id, &usecase.RatingInput{
		ClientID: clientID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, summary, "Rating recorded")
}

// GetRating returns the average and count of a profile's ratings.
func (h *ServiceHandler) GetRating(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.ratingUC.Summary(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Rating retrieved")
}
