package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/config"
	"github.com/iliyamo/tour-booking/internal/database"
	"github.com/iliyamo/tour-booking/internal/handler"
	"github.com/iliyamo/tour-booking/internal/queue"
	"github.com/iliyamo/tour-booking/internal/repository"
	"github.com/iliyamo/tour-booking/internal/router"
	queue_publisher "github.com/iliyamo/tour-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	tours := repository.NewTourRepo(db)
	bookings := repository.NewBookingRepo(db)
	sessions := repository.NewSessionRepo(db)

	if err := database.SeedTours(ctx, tours); err != nil {
		log.Fatalf("seed tours: %v", err)
	}
	if err := sessions.DeleteExpired(ctx); err != nil {
		log.Printf("purge expired sessions: %v", err)
	}

	authH := handler.NewAuthHandler(users, sessions, cfg.SessionTTLDays)
	tourH := handler.NewTourHandler(tours)
	bookingH := handler.NewBookingHandler(tours, bookings)
	bookingH.Publish = queue_publisher.PublishBookingCreated

	// Background consumer logs confirmed bookings; it reconnects on its own
	// and never takes the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, authH, tourH, bookingH, sessions, cfg.SessionTTLDays)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
