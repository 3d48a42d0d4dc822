package main

import (
	"context"
	"os"
	"time"

	"volunteerhours/internal/backend"
	"volunteerhours/internal/cli"
	apphttp "volunteerhours/internal/http"
	"volunteerhours/internal/log"
	"volunteerhours/internal/services"
)

func main() {
	cli.LoadEnvFile()

	// Logger first so configuration errors are reported in the same format.
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Failed to build backend config", log.FieldError, err)
		os.Exit(1)
	}
	result := backend.NewFactory(logger).CreateOrFallback(ctx, backendCfg)

	resolver := services.NewHoursResolver(result.Reader, nil)
	srv := apphttp.NewServer(":"+cfg.Port, resolver,
		apphttp.WithLogger(logger),
		apphttp.WithSheetsTimeout(cfg.SheetsTimeout),
	)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = cfg.SheetsTimeout + 10*time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	logger.Info("Starting volunteer hours server",
		"port", cfg.Port,
		log.FieldBackend, result.Type,
		log.FieldOperation, log.OpStartup)

	if err := cli.Serve(ctx, logger, srv, cli.DefaultShutdownTimeout); err != nil {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
