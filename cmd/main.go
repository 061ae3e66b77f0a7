package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/profiler"
	"github.com/joho/godotenv"

	"github.com/goldleaf/storefront/invoices/cmd/api"
	"github.com/goldleaf/storefront/invoices/common"
	"github.com/goldleaf/storefront/invoices/errorreporting"
	"github.com/goldleaf/storefront/invoices/framework/connection"
	"github.com/goldleaf/storefront/invoices/invoice/config"
	"github.com/goldleaf/storefront/invoices/invoice/storage"
	"github.com/goldleaf/storefront/invoices/logger"
	"github.com/goldleaf/storefront/invoices/secretmanager"
)

const (
	defaultAddr = "0.0.0.0:8082"
)

func main() {
	if err := run(); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run() error {
	// Profiler initialization, best done as early as possible.
	if common.Production {
		if err := profiler.Start(profiler.Config{
			Service:        common.GAEService,
			ServiceVersion: common.GAEVersion,
		}); err != nil {
			log.Printf("main: could not start profiler: %v", err)
		}
	}

	// Initialize basic context
	ctx := context.Background()

	// Initialize app engine logging clients
	logging, err := logger.NewLogging(ctx)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}
	defer logging.Close()

	if err := errorreporting.Init(ctx); err != nil {
		log.Printf("main: could not initialize error reporting. error %s", err)
	}
	defer errorreporting.Close()

	// A local .env file only supplies values missing from the environment.
	if common.IsLocalhost {
		if err := godotenv.Load(); err == nil {
			log.Print("main: loaded .env")
		}
	}

	cfg := config.FromEnv()
	if err := cfg.LoadSecrets(ctx, secretmanager.AccessSecretLatestVersion); err != nil {
		log.Printf("main: could not load secrets. error %s", err)
		return err
	}

	// Initialize db connections clients, only for the configured backends.
	conn, err := connection.NewConnection(ctx, logging, connectionOptions(cfg))
	if err != nil {
		log.Printf("main: could not initialize db connections. error %s", err)
		return err
	}

	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			log.Printf("main: could not close connections. error %s", err)
		}
	}()

	// =================
	// Start API Service
	log.Print("started: initializing api support")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Inject needed functionality into the api.
	handler, err := api.NewAPI(shutdown, logging, conn, cfg).Build()
	if err != nil {
		log.Printf("main: could not build api. error %s", err)
		return err
	}

	addr, err := getAddr()
	if err != nil {
		log.Println(err)
		return err
	}

	server := http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	// Start the service listening for requests.
	go func() {
		log.Printf("listening on %s", addr)
		serverErrors <- server.ListenAndServe()
	}()

	// =================
	// Shutdown

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("%s : starting server", err)

	case sig := <-shutdown:
		log.Printf("%v : start shutdown", sig)

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// Asking listener to shutdown and load shed.
		err := server.Shutdown(ctx)
		if err != nil {
			log.Printf("main : graceful shutdown did not complete")

			err = server.Close()
		}

		// Log the status of this shutdown.
		switch {
		case sig == syscall.SIGSTOP:
			return errors.New("integrity issue caused shutdown")
		case err != nil:
			return fmt.Errorf("could not stop server gracefully: %s", err)
		}
	}

	return nil
}

func connectionOptions(cfg *config.Config) connection.Options {
	opts := connection.Options{
		Firestore:    cfg.OrdersBackend == config.OrdersBackendFirestore,
		CloudStorage: cfg.StorageProvider == storage.ProviderGCS,
	}

	if cfg.OrdersBackend == config.OrdersBackendMongoDB {
		opts.MongoURI = cfg.MongoURI
		opts.MongoDatabase = cfg.MongoDatabase
	}

	return opts
}

func getAddr() (string, error) {
	port := os.Getenv("PORT")
	if port == "" {
		return defaultAddr, nil
	}

	return fmt.Sprintf(":%s", port), nil
}
