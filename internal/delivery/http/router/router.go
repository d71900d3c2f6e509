// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rental/internal/delivery/http/middleware"
	"rental/internal/delivery/http/router/handler"
	"rental/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CarHandler     *handler.CarHandler
	BookingHandler *handler.BookingHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	carHandler     *handler.CarHandler
	bookingHandler *handler.BookingHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		carHandler:     params.CarHandler,
		bookingHandler: params.BookingHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/register-admin", r.authHandler.RegisterAdmin)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.Verify, r.authMiddleware.Authenticate)
	}

	// Fleet catalog: public reads, admin-gated writes
	carGroup := e.Group("/cars")
	{
		carGroup.GET("", r.carHandler.ListCars)
		carGroup.GET("/:id", r.carHandler.GetCar)
		carGroup.POST("", r.carHandler.AddCar, r.authMiddleware.Authenticate, requireAdmin)
		carGroup.PUT("/:id", r.carHandler.UpdateCar, r.authMiddleware.Authenticate, requireAdmin)
	}

	// Booking routes require authentication
	bookingGroup := e.Group("/bookings")
	bookingGroup.Use(r.authMiddleware.Authenticate)
	{
		bookingGroup.POST("", r.bookingHandler.CreateBooking)
		bookingGroup.GET("/mine", r.bookingHandler.ListMine)
		bookingGroup.GET("", r.bookingHandler.ListAll, requireAdmin)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(requireAdmin)
	{
		adminGroup.GET("/stats", r.adminHandler.Stats)
	}
}
