package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"paste-upload/internal/adapters/attachments/local"
	minioattachments "paste-upload/internal/adapters/attachments/minio"
	"paste-upload/internal/adapters/editor/memory"
	"paste-upload/internal/adapters/eventbroker/nats"
	"paste-upload/internal/adapters/handlers/http/chi"
	"paste-upload/internal/adapters/handlers/http/chi/v1/document"
	"paste-upload/internal/adapters/handlers/http/chi/v1/event"
	settingshandler "paste-upload/internal/adapters/handlers/http/chi/v1/settings"
	"paste-upload/internal/adapters/handlers/http/chi/v1/uploads"
	"paste-upload/internal/adapters/httpclient"
	"paste-upload/internal/adapters/notifier"
	"paste-upload/internal/adapters/prompter"
	"paste-upload/internal/adapters/repository/postgres"
	"paste-upload/internal/adapters/settingsstore/jsonfile"
	"paste-upload/internal/config"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
	"paste-upload/internal/core/service/dropevent"
	"paste-upload/internal/core/service/history"
	settingsservice "paste-upload/internal/core/service/settings"
	"paste-upload/internal/core/service/upload"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//attachment storage
	attachmentStore, err := initAttachments(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init attachment store", "error", err)
		os.Exit(1)
	}

	//repositories
	recordRepo := postgres.NewSqlUploadRecordRepository(db)

	//host-side collaborators
	documentStore := memory.NewStore()
	settingsStore := jsonfile.NewStore(cfg.Settings.Path)
	sender := httpclient.NewClient(cfg.HTTPClient.Timeout)
	notify := notifier.NewSlog(logger)
	// headless runs cannot show a dialog; an unanswerable prompt counts as
	// dismissed, so ask-each-time PDFs fall back to the local save path
	prompt := prompter.NewAuto(false)

	//services
	settingsService, err := settingsservice.NewSettingsService(ctx, settingsStore, seedConfig(cfg.Upload), logger)
	if err != nil {
		logger.Error("failed to init settings service", "error", err)
		os.Exit(1)
	}
	uploadService := upload.NewUploadService(
		documentStore,
		sender,
		settingsService,
		attachmentStore,
		prompt,
		notify,
		recordRepo,
		logger,
	)
	historyService := history.NewHistoryService(recordRepo)

	//http
	eventHandler := event.NewEventHandlerV1(uploadService, logger)
	documentHandler := document.NewDocumentHandlerV1(documentStore, logger)
	settingsHandler := settingshandler.NewSettingsHandlerV1(settingsService, logger)
	uploadsHandler := uploads.NewUploadsHandlerV1(historyService, logger)

	router := chi.NewRouter(logger, eventHandler, documentHandler, settingsHandler, uploadsHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//optional broker intake for frontends publishing drop events to JetStream
	var natsConsumer *nats.Consumer
	if cfg.NATS.Enabled {
		natsConsumer, err = nats.NewDropEventConsumer(cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to create NATS consumer", "error", err)
			os.Exit(1)
		}
		dropService := dropevent.NewDropEventService(uploadService, logger)
		if err := natsConsumer.Subscribe(ctx, dropService); err != nil {
			logger.Error("failed to subscribe to NATS", "error", err)
			os.Exit(1)
		}
		logger.Info("NATS subscription active", "subject", cfg.NATS.Subject)
	}

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	if natsConsumer != nil {
		if err := natsConsumer.Close(); err != nil {
			logger.Error("failed to close NATS consumer", "error", err)
		}
	}

	//let in-flight uploads resolve their placeholders before exit
	uploadService.Wait()

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initAttachments(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.AttachmentStore, error) {
	switch cfg.Attachments.Backend {
	case "minio":
		return minioattachments.NewStore(ctx, cfg.Minio, logger)
	case "local":
		return local.NewStore(cfg.Attachments.Dir)
	default:
		return nil, fmt.Errorf("unknown attachments backend %q", cfg.Attachments.Backend)
	}
}

func seedConfig(defaults config.UploadDefaults) domain.UploadConfig {
	return domain.UploadConfig{
		Endpoint:       defaults.Endpoint,
		FileFieldName:  defaults.FileFieldName,
		ResponsePath:   defaults.ResponsePath,
		PdfDisposition: domain.PdfDisposition(defaults.PdfDisposition),
	}
}
