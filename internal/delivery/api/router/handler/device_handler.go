package handler

import (
	"net/http"

	"zeneasy/internal/delivery/api/middleware"
	"zeneasy/internal/delivery/api/response"
	"zeneasy/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler manages the caller's push devices. Every route needs a user token.
type DeviceHandler struct {
	devices usecase.DeviceUsecase
}

func NewDeviceHandler(devices usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{devices: devices}
}

// RegisterDeviceRequest is the body of POST /devices.
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required,max=255"`
	DeviceID string `json:"deviceId" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

func (h *DeviceHandler) Register(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID, _ := middleware.GetUserID(c)
	device, err := h.devices.Register(c.Request().Context(), userID, usecase.DeviceRegistration{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered")
}

func (h *DeviceHandler) List(c echo.Context) error {
	userID, _ := middleware.GetUserID(c)
	devices, err := h.devices.ListActive(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved")
}

func (h *DeviceHandler) Deactivate(c echo.Context) error {
	deviceID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, _ := middleware.GetUserID(c)
	if err := h.devices.Deactivate(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deactivated")
}
