package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/handler"
	"github.com/iliyamo/tour-booking/internal/middleware"
)

// RegisterRoutes wires every endpoint of the API onto the provided Echo
// instance. The session middleware runs on the whole /api group so public
// endpoints can still observe identity when a cookie is present; only the
// booking endpoints additionally require authentication.
//
// The exact paths are a contract with the single-page client and must not
// change.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, t *handler.TourHandler, b *handler.BookingHandler, sessions middleware.SessionStore, ttlDays int) {
	// Health check for load balancers and monitoring.
	e.GET("/health", handler.Health)

	api := e.Group("/api")
	api.Use(middleware.Session(sessions, ttlDays))

	// Auth endpoints. Register and login establish the session themselves;
	// logout works with whatever cookie is present.
	api.POST("/register", a.Register)
	api.POST("/login", a.Login)
	api.POST("/logout", a.Logout)
	api.GET("/user", a.Me)

	// Public catalog.
	api.GET("/tours", t.List)
	api.GET("/tours/:id", t.Get)

	// Booking endpoints require an authenticated session.
	bookings := api.Group("/bookings", middleware.RequireAuth)
	bookings.POST("", b.Create)
	bookings.GET("", b.List)
}
