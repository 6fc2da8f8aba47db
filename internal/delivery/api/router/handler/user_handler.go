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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	OTPUC  usecase.OTPUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	otpUC  usecase.OTPUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		otpUC:  params.OTPUC,
		logger: params.Logger,
	}
}

// AddressRequest is the postal address of a user.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

func (a AddressRequest) toEntity() entity.Address {
	return entity.Address{Street: a.Street, City: a.City, PostalCode: a.PostalCode}
}

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Name         string         `json:"name" validate:"required"`
	Address      AddressRequest `json:"address"`
	PhoneNumber  string         `json:"phoneNumber" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	DateOfBirth  string         `json:"dateOfBirth" validate:"required"`
	Gender       string         `json:"gender" validate:"required,oneof=Male Female"`
	Nationality  string         `json:"nationality" validate:"required"`
	Occupation   string         `json:"occupation"`
	ProfileImage string         `json:"profileImage"`
	NID          string         `json:"nid"`
}

// UpdateUserRequest is the body of PUT /users/:id. Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Name         *string         `json:"name" validate:"omitempty,min=1"`
	Address      *AddressRequest `json:"address"`
	PhoneNumber  *string         `json:"phoneNumber"`
	DateOfBirth  *string         `json:"dateOfBirth"`
	Gender       *string         `json:"gender" validate:"omitempty,oneof=Male Female"`
	Nationality  *string         `json:"nationality"`
	Occupation   *string         `json:"occupation"`
	ProfileImage *string         `json:"profileImage"`
	NID          *string         `json:"nid"`
}

// VerifyOTPRequest carries the code the user received by email.
type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Name:         req.Name,
		Address:      req.Address.toEntity(),
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		DateOfBirth:  dob,
		Gender:       entity.Gender(req.Gender),
		Nationality:  req.Nationality,
		Occupation:   req.Occupation,
		ProfileImage: req.ProfileImage,
		NID:          req.NID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// GetUser returns a user with its ownership lists.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved")
}

// UpdateUser lets a user edit its own profile.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := req.toDetails()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), middleware.GetActor(c), id, details)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User updated")
}

func (r *UpdateUserRequest) toDetails() (*entity.UserDetails, error) {
	details := &entity.UserDetails{
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		Nationality:  r.Nationality,
		Occupation:   r.Occupation,
		ProfileImage: r.ProfileImage,
		NID:          r.NID,
	}

	if r.Address != nil {
		address := r.Address.toEntity()
		details.Address = &address
	}

	if r.Gender != nil {
		gender := entity.Gender(*r.Gender)
		details.Gender = &gender
	}

	if r.DateOfBirth != nil {
		dob, err := parseDate(*r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		details.DateOfBirth = &dob
	}

	return details, nil
}

// GenerateOTP emails a fresh verification code to the user.
func (h *UserHandler) GenerateOTP(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.otpUC.Generate(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// VerifyOTP consumes the code, marks the user verified and returns a session token.
func (h *UserHandler) VerifyOTP(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req VerifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.otpUC.Validate(c.Request().Context(), id, req.OTP)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token": output.Token,
		"user":  output.User,
	}, "Email verified")
}
