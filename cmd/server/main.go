package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petstore-samples/service-petstore/internal/application"
	"github.com/petstore-samples/service-petstore/internal/config"
	orderDomain "github.com/petstore-samples/service-petstore/internal/domain/order"
	petDomain "github.com/petstore-samples/service-petstore/internal/domain/pet"
	userDomain "github.com/petstore-samples/service-petstore/internal/domain/user"
	"github.com/petstore-samples/service-petstore/internal/handler"
	"github.com/petstore-samples/service-petstore/internal/logger"
	"github.com/petstore-samples/service-petstore/internal/middleware"
	"github.com/petstore-samples/service-petstore/internal/repository"
	"github.com/petstore-samples/service-petstore/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-petstore")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-petstore",
		zap.String("port", cfg.Port),
	)

	// Construct the backing tables once; they live for the whole process.
	petTable := store.New[int64, petDomain.Pet]()
	orderTable := store.New[int64, orderDomain.Order]()
	userTable := store.New[int64, userDomain.User]()

	if cfg.SeedData {
		repository.SeedPets(petTable)
		repository.SeedOrders(orderTable)
		repository.SeedUsers(userTable)
		log.Info("seeded startup data")
	}

	// Initialize repositories; the order repository gets a read-only view of
	// the pet repository for referential checks.
	petRepo := repository.NewInMemoryPetRepository(petTable)
	orderRepo := repository.NewInMemoryOrderRepository(orderTable, petRepo)
	userRepo := repository.NewInMemoryUserRepository(userTable)

	// Initialize application services
	petService := application.NewPetService(petRepo, log)
	storeService := application.NewStoreService(orderRepo, log)
	userService := application.NewUserService(userRepo, log)

	// Initialize HTTP handlers
	petHandler := handler.NewPetHandler(petService)
	storeHandler := handler.NewStoreHandler(storeService)
	userHandler := handler.NewUserHandler(userService)

	// Register custom binding rules
	if err := handler.RegisterValidations(); err != nil {
		log.Fatal("failed to register validations", zap.Error(err))
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())

	// Register routes
	petHandler.RegisterRoutes(&router.RouterGroup)
	storeHandler.RegisterRoutes(&router.RouterGroup)
	userHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-petstore...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-petstore stopped")
}
