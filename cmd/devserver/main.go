// Command devserver serves the WASM widget for local development and
// proxies the recommendations API to a running backend.
//
//	GOOS=js GOARCH=wasm go build -o web/recommendations.wasm ./cmd/recommendations-wasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/
//	UPSTREAM_URL=http://127.0.0.1:5000 go run ./cmd/devserver
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vcrobe/movierecs/internal/config"
	"github.com/vcrobe/movierecs/internal/devserver"
	"github.com/vcrobe/movierecs/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Output = os.Stderr
	logging.Init(logCfg)

	srv, err := devserver.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create dev server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logging.Error().Err(err).Msg("Dev server stopped with error")
		stop()
		os.Exit(1)
	}
	logging.Info().Msg("Dev server stopped")
}
