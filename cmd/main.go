package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"eventvote/internal/config"
	"eventvote/internal/handlers"
	"eventvote/internal/repository"
	"eventvote/internal/repository/memory"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

func main() {
	// 1. Log to stderr until the configuration is known
	bootLog := logger.Init("eventvote", true, false, io.Discard)

	// 2. Load configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()

		// Closing the stderr-only logger lets the file-backed one become the default.
		bootLog.Close()
		defer logger.Init("eventvote", true, false, f).Close()
	} else {
		defer bootLog.Close()
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 3. Open the store
	store, err := openStore(cfg)
	if err != nil {
		logger.Fatalf("Failed to open store: %v", err)
	}

	// 4. Initialize the HTTP handler and router
	httpHandler := handlers.NewHTTPHandler(store, cfg)
	r := handlers.NewRouter(httpHandler)

	server := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: r,
	}

	// 5. Shut down on Ctrl-C
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Errorf("Server shutdown: %v", err)
		}
	}()

	// 6. Run the server
	logger.Infof("Server starting on http://localhost:%d (store: %s)", cfg.Port, cfg.Store)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("Failed to run server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		logger.Errorf("Failed to close store: %v", err)
	}
	logger.Info("Server stopped")
}

func openStore(cfg config.Config) (repository.Store, error) {
	if cfg.Store == config.StoreMemory {
		logger.Warning("Using in-memory store; data is lost on restart")
		return memory.NewStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	store, err := repository.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		store.Close(ctx)
		return nil, err
	}
	logger.Infof("Connected to MongoDB database %s", cfg.MongoDatabase)
	return store, nil
}
