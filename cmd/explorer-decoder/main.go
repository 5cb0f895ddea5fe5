package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Profile     string   `long:"profile" env:"EXPLORER_DECODER_PROFILE" description:"YAML parser profile"`
	Precision   int      `long:"precision" env:"EXPLORER_DECODER_PRECISION" description:"coin precision, overrides the profile when not negative" default:"-1"`
	Hash        string   `long:"hash" env:"EXPLORER_DECODER_HASH" description:"queried hash; defaults to the input file name without extension"`
	Inputs      []string `long:"input" env:"EXPLORER_DECODER_INPUT" env-delim:"," description:"saved explorer response, repeatable" required:"true"`
	Block       bool     `long:"block" env:"EXPLORER_DECODER_BLOCK" description:"decode inputs as block responses"`
	Workers     int      `long:"workers" env:"EXPLORER_DECODER_WORKERS" description:"number of concurrent decoders" default:"4"`
	Output      string   `long:"output" env:"EXPLORER_DECODER_OUTPUT" description:"write JSON line summaries to this file, - for stdout"`
	FlushSize   int      `long:"flush-size" env:"EXPLORER_DECODER_FLUSH_SIZE" description:"summaries written per batch" default:"64"`
	FlushRate   int      `long:"flush-rate" env:"EXPLORER_DECODER_FLUSH_RATE" description:"maximum batches written per second, 0 for unlimited"`
	MetricsAddr string   `long:"metrics-addr" env:"EXPLORER_DECODER_METRICS_ADDR" description:"serve prometheus metrics on this address while decoding"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("explorer decoder failed", zap.Error(err))
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
