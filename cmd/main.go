package main

import (
	"context"
	"errors"
	"file-exchange/contract"
	"file-exchange/infrastructure/http/server"
	"file-exchange/internal"
	"file-exchange/observability"
	"file-exchange/repositories"
	"file-exchange/services"
	"file-exchange/sink"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the listeners' lifecycle so deferred
// cleanup (journal close) always executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	policy, err := config.Policy()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage root
	storageRoot := config.EffectiveStorageRoot()
	rootFs, err := repositories.NewStorageRoot(afero.NewOsFs(), storageRoot)
	if err != nil {
		return fmt.Errorf("storage root %s unavailable: %w", storageRoot, err)
	}
	fileRepository := repositories.NewFileRepository(rootFs, log)

	// 3. Journal (BadgerDB)
	db, err := openJournal(config.JournalPath)
	if err != nil {
		return fmt.Errorf("journal opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing journal...")
		_ = db.Close()
	}()
	journal := repositories.NewJournalRepository(db, log)

	// 4. Observability
	metrics := observability.NewMetrics(log, storageRoot)
	hub := sink.NewProgressHub(log)
	progressObservers := []contract.ProgressObserver{hub}
	if config.ConsoleProgress {
		progressObservers = append(progressObservers, sink.NewConsoleProgress(os.Stdout, true))
	}
	sinks := []contract.EventSink{
		sink.NewJournalSink(journal, log),
		sink.NewMetricsSink(metrics),
	}

	// 5. Upload pipeline & router
	uploads := services.NewUploadService(
		log, fileRepository, policy,
		sink.NewObservers(log, progressObservers...),
		config.ChunkSize, sinks...,
	)
	router := server.NewRouter(log, fileRepository, uploads, policy, config.BodyLimit(), sinks...)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Listeners
	errChan := make(chan error, 2)
	public, err := listen(log, config.Address(), router.Handler(), errChan)
	if err != nil {
		return err
	}
	log.Info("Serving files", "address", config.Address(), "storage_root", storageRoot,
		"allowed_extensions", policy.Accept(), "max_size_bytes", policy.MaxSizeBytes)

	var ops *http.Server
	if address := config.OpsAddress(); address != "" {
		opsServer := internal.NewOpsServer(log, journal, metrics, hub, storageRoot)
		if ops, err = listen(log, address, opsServer.Handler(), errChan); err != nil {
			return err
		}
		log.Info("Ops listener started", "address", address)
	}

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := public.Shutdown(shutdownCtx); err != nil {
		log.Warn("Public listener did not stop cleanly", "error", err)
	}
	if ops != nil {
		if err := ops.Shutdown(shutdownCtx); err != nil {
			log.Warn("Ops listener did not stop cleanly", "error", err)
		}
	}
	log.Info("Program stopped cleanly")
	return nil
}

func openJournal(path string) (*badger.DB, error) {
	options := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		options = options.WithInMemory(true)
	}
	return badger.Open(options)
}

// listen binds synchronously so a busy port is reported as a startup error,
// then serves in the background.
func listen(log *slog.Logger, address string, handler http.Handler, errChan chan<- error) (*http.Server, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Debug("Listener accepting", "address", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server %s: %w", address, err)
		}
	}()
	return srv, nil
}
