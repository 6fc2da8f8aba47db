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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	ServiceUC usecase.ServiceUsecase
	RentUC    usecase.RentUsecase
	Logger    *slog.Logger
}

// AdminHandler serves the moderation endpoints. Every route requires an admin token.
type AdminHandler struct {
	userUC    usecase.UserUsecase
	serviceUC usecase.ServiceUsecase
	rentUC    usecase.RentUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		userUC:    params.UserUC,
		serviceUC: params.ServiceUC,
		rentUC:    params.RentUC,
		logger:    params.Logger,
	}
}

// UpdateUserStatusRequest is the body of PATCH /admin/users/:id/status.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// UpdateApprovalRequest is the body of PATCH /admin/services/:id/approval.
type UpdateApprovalRequest struct {
	IsApproved string `json:"isApproved" validate:"required,oneof=pending approved reject"`
}

// ListUsers returns one page of users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	list, err := h.userUC.ListUsers(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listPayload{Items: list.Users, Total: list.Total}, "Users retrieved")
}

// UpdateUserStatus activates or deactivates a user.
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateStatus(c.Request().Context(), id, entity.AccountStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User status updated")
}

// DeleteUser hard-deletes a user.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

// ListServices returns every profile, optionally filtered by approval and category.
func (h *AdminHandler) ListServices(c echo.Context) error {
	filter := entity.ServiceFilter{
		Category: entity.ServiceCategory(c.QueryParam("category")),
		Approval: entity.ApprovalState(c.QueryParam("approval")),
		Status:   entity.AccountStatus(c.QueryParam("status")),
	}

	list, err := h.serviceUC.ListAll(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listPayload{Items: list.Services, Total: list.Total}, "Service profiles retrieved")
}

// UpdateServiceApproval moderates a profile.
func (h *AdminHandler) UpdateServiceApproval(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateApprovalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.serviceUC.UpdateApproval(c.Request().Context(), id, entity.ApprovalState(req.IsApproved))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Service approval updated")
}

// DeleteService removes a profile and its ratings.
func (h *AdminHandler) DeleteService(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.serviceUC.DeleteService(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Service profile deleted")
}

// ListRents returns every listing matching the filters.
func (h *AdminHandler) ListRents(c echo.Context) error {
	list, err := h.rentUC.ListRents(c.Request().Context(), &usecase.RentQuery{
		Filter: entity.RentFilter{
			Category: entity.RentCategory(c.QueryParam("category")),
			City:     c.QueryParam("city"),
			Status:   entity.RentStatus(c.QueryParam("status")),
		},
		Page: pageFromQuery(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rents := make([]*entity.RentListing, 0, len(list.Rents))
	for _, result := range list.Rents {
		rents = append(rents, result.Rent)
	}

	return response.Success(c, http.StatusOK, listPayload{Items: rents, Total: list.Total}, "Rent listings retrieved")
}

// DeleteRent removes any listing.
func (h *AdminHandler) DeleteRent(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.rentUC.DeleteRent(c.Request().Context(), middleware.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Rent listing deleted")
}
