package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/wedspace/wedspace-api/internal/config"
	"github.com/wedspace/wedspace-api/internal/database"
	"github.com/wedspace/wedspace-api/internal/handler"
	"github.com/wedspace/wedspace-api/internal/queue"
	"github.com/wedspace/wedspace-api/internal/repository"
	"github.com/wedspace/wedspace-api/internal/router"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	venues := repository.NewVenueRepo(db)
	bookings := repository.NewBookingRepo(db)
	reviews := repository.NewReviewRepo(db)

	auth := handler.NewAuthHandler(cfg, users)
	venueHandler := handler.NewVenueHandler(venues, reviews)
	bookingHandler := handler.NewBookingHandler(venues, bookings)
	reviewHandler := handler.NewReviewHandler(venues, bookings, reviews)

	// Rate limiting and venue caching degrade to pass-through when
	// Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}

	// Background consumer appends committed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echomw.CORS()) // mobile client calls from another origin
	router.RegisterRoutes(e)
	router.RegisterAPI(e, auth, venueHandler, bookingHandler, reviewHandler, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
