package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/grbus/seatcore/internal/adapter/artifact"
	"github.com/grbus/seatcore/internal/adapter/handler"
	"github.com/grbus/seatcore/internal/adapter/repository/postgres"
	redisadapter "github.com/grbus/seatcore/internal/adapter/repository/redis"
	"github.com/grbus/seatcore/internal/core/services"
	"github.com/grbus/seatcore/internal/platform/config"
	"github.com/grbus/seatcore/internal/platform/database"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Postgres, log)
	if err != nil {
		log.Fatalf("failed to connect to db after retries: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.InitSchema(ctx, db); err != nil {
		log.Fatalf("failed to init schema: %v", err)
	}

	redisClient := goredis.NewClient(&goredis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Info("redis connected")

	tripRepo := postgres.NewTripRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	seatCache := redisadapter.NewSeatCache(redisClient, cfg.Redis.CacheTTL)

	inventory := services.NewSeatInventory(tripRepo, seatCache, cfg.Inventory.MaxRetries, log)
	tripService := services.NewTripService(tripRepo, log)
	coordinator := services.NewBookingCoordinator(
		inventory,
		tripRepo,
		bookingRepo,
		noopPaymentGateway{log: log},
		noopNotifier{log: log},
		artifact.NewQRGenerator(),
		seatCache,
		log,
	)

	repair := services.NewRepairWorker(
		inventory,
		bookingRepo,
		seatCache,
		cfg.Repair.Interval,
		cfg.Repair.Lookback,
		cfg.Repair.HoldTTL,
		log,
	)
	go repair.Run(ctx)

	bookingHandler := handler.NewBookingHandler(coordinator, inventory, tripService, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/bookings", bookingHandler.CreateBooking)
	mux.HandleFunc("/bookings/cancel", bookingHandler.CancelBooking)
	mux.HandleFunc("/payments/result", bookingHandler.RecordPayment)
	mux.HandleFunc("/seats", bookingHandler.GetSeats)
	mux.HandleFunc("/trips", bookingHandler.ScheduleTrip)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server startup failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server exiting")
}
