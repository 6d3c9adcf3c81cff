package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-diadoc/internal/app"
	"github.com/MKhiriev/go-diadoc/internal/client"
	"github.com/MKhiriev/go-diadoc/internal/config"
	"github.com/MKhiriev/go-diadoc/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewConsoleLogger("diadoc-samples", cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	samples := client.NewApp(cfg, app.NewBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err = samples.Run(ctx, args); err != nil {
		if hint := app.MessageFor(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
