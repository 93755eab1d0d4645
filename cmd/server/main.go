package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luisitotec2025/transportesManoloBack/internal/config"
	"github.com/luisitotec2025/transportesManoloBack/internal/handler"
	"github.com/luisitotec2025/transportesManoloBack/internal/logging"
	"github.com/luisitotec2025/transportesManoloBack/internal/notify"
	"github.com/luisitotec2025/transportesManoloBack/internal/repository"
	"github.com/luisitotec2025/transportesManoloBack/internal/service"
	"github.com/luisitotec2025/transportesManoloBack/internal/storage"
	"github.com/luisitotec2025/transportesManoloBack/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("")
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	messageRepo := repository.NewPgMessageRepository(pool)
	vehicleRepo := repository.NewPgVehicleRepository(pool)

	var store storage.Storage
	switch cfg.Upload.Provider {
	case "cloudinary":
		store = storage.NewCloudinaryStorage(
			cfg.Upload.CloudinaryCloudName,
			cfg.Upload.CloudinaryAPIKey,
			cfg.Upload.CloudinaryAPISecret,
			cfg.Upload.CloudinaryFolder,
		)
	default:
		store = storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	}

	if !cfg.SMTP.Configured() {
		slog.Warn("smtp credentials missing: quote notifications will be logged as configuration errors")
	}
	smtpMailer := mailer.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.Timeout,
	)
	dispatcher := notify.NewDispatcher(
		smtpMailer,
		cfg.SMTP.Sender(),
		cfg.SMTP.Recipient(),
		cfg.SMTP.Timeout,
		cfg.Dispatch.Workers,
		cfg.Dispatch.QueueSize,
		slog.Default(),
	)
	dispatcher.Start()

	messageService := service.NewMessageService(messageRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	quoteService := service.NewQuoteService(vehicleRepo, dispatcher, cfg.PublicBaseURL)

	h := handler.New(cfg.Origins())
	messageHandler := handler.NewMessageHandler(messageService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, store)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /contact", messageHandler.Submit)
	mux.HandleFunc("GET /vehicles", vehicleHandler.List)
	mux.HandleFunc("POST /vehicles", vehicleHandler.Create)
	mux.HandleFunc("DELETE /vehicles/{id}", vehicleHandler.Delete)
	mux.HandleFunc("POST /quotes", quoteHandler.Create)

	// Local photo storage is served statically so photo URLs resolve.
	if cfg.Upload.Provider != "cloudinary" {
		prefix := cfg.Upload.URLPrefix
		mux.Handle("GET "+prefix+"/", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Upload.Dir))))
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.CORS(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	// Drain in-flight notification dispatches before exiting.
	if err := dispatcher.Stop(ctx); err != nil {
		slog.Error("dispatcher drain timed out", "error", err)
	}
}
