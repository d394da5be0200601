package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zapshift/zapshift-backend/internal/config"
	"github.com/zapshift/zapshift-backend/internal/database"
	"github.com/zapshift/zapshift-backend/internal/handlers"
	"github.com/zapshift/zapshift-backend/internal/middleware"
	"github.com/zapshift/zapshift-backend/internal/services"
	"github.com/zapshift/zapshift-backend/internal/stores"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the document store
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.Connect(connectCtx, cfg)
	cancel()
	if err != nil {
		logrus.Fatalf("Failed to initialize document store: %v", err)
	}

	db := client.Database(cfg.DBName)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		logrus.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Initialize Firebase auth
	authClient, err := services.InitFirebase(context.Background(), cfg.FirebaseCredentials)
	if err != nil {
		logrus.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Initialize Stripe checkout
	checkout, err := services.InitStripe(cfg.StripeSecret, cfg.SiteDomain)
	if err != nil {
		logrus.Fatalf("Failed to initialize Stripe: %v", err)
	}

	parcels := stores.NewParcels(db)
	users := stores.NewUsers(db)
	riders := stores.NewRiders(db)
	payments := stores.NewPayments(db)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Routes
	r.GET("/", handlers.Health())

	r.GET("/parcels", handlers.GetParcels(parcels))
	r.GET("/parcels/:id", handlers.GetParcel(parcels))
	r.POST("/parcels", handlers.CreateParcel(parcels))
	r.DELETE("/parcels/:id", handlers.DeleteParcel(parcels))

	r.POST("/users", handlers.CreateUser(users))

	r.POST("/riders", handlers.CreateRider(riders))
	r.GET("/riders", handlers.GetRiders(riders))
	r.PATCH("/riders/:id", middleware.AuthMiddleware(authClient), handlers.UpdateRiderStatus(riders))

	r.POST("/zapshift-checkout-session", handlers.CreateCheckoutSession(checkout))
	r.PATCH("/verify-payment-success", handlers.VerifyPayment(checkout, parcels, payments))
	r.GET("/payments", middleware.AuthMiddleware(authClient), handlers.GetPayments(payments))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logrus.Infof("Server is running on port: %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then release the
	// document store client.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logrus.Errorf("Document store disconnect failed: %v", err)
	}

	logrus.Info("Server stopped")
}
