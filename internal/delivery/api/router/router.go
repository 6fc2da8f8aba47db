// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zeneasy/config"
	"zeneasy/internal/delivery/api/middleware"
	"zeneasy/internal/delivery/api/router/handler"
	"zeneasy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	RentHandler     *handler.RentHandler
	ServiceHandler  *handler.ServiceHandler
	FeedbackHandler *handler.FeedbackHandler
	UploadHandler   *handler.UploadHandler
	DeviceHandler   *handler.DeviceHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Recorder
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	rentHandler     *handler.RentHandler
	serviceHandler  *handler.ServiceHandler
	feedbackHandler *handler.FeedbackHandler
	uploadHandler   *handler.UploadHandler
	deviceHandler   *handler.DeviceHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	otpLimiter      *middleware.RateLimiter
	metrics         *metrics.Recorder
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	var otpRule config.RateLimitRule
	if params.Config.RateLimit != nil {
		otpRule = params.Config.RateLimit.OTP
	}

	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		rentHandler:     params.RentHandler,
		serviceHandler:  params.ServiceHandler,
		feedbackHandler: params.FeedbackHandler,
		uploadHandler:   params.UploadHandler,
		deviceHandler:   params.DeviceHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
		otpLimiter:      middleware.NewRateLimiter(otpRule),
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && (r.config.Metrics == nil || r.config.Metrics.Enabled) {
		path := defaultMetricsPath
		if r.config.Metrics != nil && r.config.Metrics.Path != "" {
			path = r.config.Metrics.Path
		}
		e.GET(path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate
	userOnly := []echo.MiddlewareFunc{authenticated, r.authMiddleware.RequireUser}

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.IssueToken)
		authGroup.POST("/admin/login", r.authHandler.AdminLogin)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser, userOnly...)
		usersGroup.POST("/:id/otp", r.userHandler.GenerateOTP, r.otpLimiter.Handle)
		usersGroup.POST("/:id/otp/verify", r.userHandler.VerifyOTP, r.otpLimiter.Handle)
		usersGroup.GET("/:id/rents", r.rentHandler.ListUserRents)
		usersGroup.GET("/:id/services", r.serviceHandler.ListUserServices)
	}

	rentsGroup := apiV1.Group("/rents")
	{
		rentsGroup.POST("", r.rentHandler.CreateRent, userOnly...)
		rentsGroup.GET("", r.rentHandler.ListRents)
		rentsGroup.GET("/:id", r.rentHandler.GetRent)
		rentsGroup.GET("/:id/qr", r.rentHandler.RentQRCode)
		rentsGroup.PATCH("/:id/status", r.rentHandler.UpdateRentStatus, authenticated)
		rentsGroup.DELETE("/:id", r.rentHandler.DeleteRent, authenticated)
	}

	servicesGroup := apiV1.Group("/services")
	{
		servicesGroup.POST("", r.serviceHandler.CreateService, userOnly...)
		servicesGroup.GET("", r.serviceHandler.ListServices)
		servicesGroup.GET("/:id", r.serviceHandler.GetService)
		servicesGroup.POST("/:id/ratings", r.serviceHandler.AppendRating, userOnly...)
		servicesGroup.GET("/:id/rating", r.serviceHandler.GetRating)
	}

	feedbackGroup := apiV1.Group("/feedback")
	{
		feedbackGroup.POST("", r.feedbackHandler.Submit, userOnly...)
		feedbackGroup.GET("", r.feedbackHandler.List)
	}

	apiV1.POST("/uploads", r.uploadHandler.Upload, authenticated)

	devicesGroup := apiV1.Group("/devices", userOnly...)
	{
		devicesGroup.POST("", r.deviceHandler.Register)
		devicesGroup.GET("", r.deviceHandler.List)
		devicesGroup.DELETE("/:id", r.deviceHandler.Deactivate)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check for the role
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PATCH("/users/:id/status", r.adminHandler.UpdateUserStatus)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.GET("/services", r.adminHandler.ListServices)
		adminGroup.PATCH("/services/:id/approval", r.adminHandler.UpdateServiceApproval)
		adminGroup.DELETE("/services/:id", r.adminHandler.DeleteService)
		adminGroup.GET("/rents", r.adminHandler.ListRents)
		adminGroup.DELETE("/rents/:id", r.adminHandler.DeleteRent)
	}
}
