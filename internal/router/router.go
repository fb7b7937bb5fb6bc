package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/wedspace/wedspace-api/internal/config"
    "github.com/wedspace/wedspace-api/internal/handler"
    "github.com/wedspace/wedspace-api/internal/middleware"
)

// RegisterRoutes registers routes that carry no API prefix.  Currently
// it exposes only a health check for load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers all application endpoints under /api.  The API
// is unauthenticated: a token-bucket rate limiter is applied to the
// whole group, and the venue listing additionally goes through the
// Redis response cache.  The venue detail page is deliberately not
// cached so a fresh booking is visible on the very next fetch.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, v *handler.VenueHandler, b *handler.BookingHandler, r *handler.ReviewHandler, rdb *redis.Client) {
	api := e.Group("/api")
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Users
	api.POST("/register", a.Register)
	api.POST("/login", a.Login)

	// Venues.  The cached listing may show is_booked=false for up to
	// one CACHE_TTL after a booking; the uncached detail route is the
	// authoritative availability read, and the booking transaction
	// itself re-checks the flag.
	api.GET("/venues", v.ListVenues, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	api.GET("/venues/:id", v.GetVenueDetail)

	// Bookings
	api.POST("/bookings", b.CreateBooking)
	api.GET("/bookings/user/:id", b.ListUserBookings)

	// Reviews
	api.POST("/reviews", r.CreateReview)
}
