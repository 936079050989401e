// Package main - Entry point for the fargate-cost API server
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fargate-cost/api"
	"fargate-cost/core/catalog"
	"fargate-cost/core/engine"
	"fargate-cost/core/pricing"
	"fargate-cost/internal/config"
	"fargate-cost/internal/logging"
	"fargate-cost/metrics"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Default()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			logging.Error("failed to load config", zap.Error(err))
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("failed to initialize logging", zap.Error(err))
	}

	model, err := pricing.Parse(cfg.Pricing.PerVCPUHour, cfg.Pricing.PerGBHour, pricing.Currency(cfg.Pricing.Currency))
	if err != nil {
		logging.Error("invalid pricing configuration", zap.Error(err))
		os.Exit(1)
	}

	cat := catalog.Default()
	eng := engine.New(cat, model, version)
	apiServer := api.NewServer(version, eng)

	prometheus.MustRegister(metrics.NewTierCollector(cat, model))

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))
	mux.Handle(cfg.Server.MetricsPath, promhttp.Handler())

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	logging.Info("starting fargate-cost server",
		zap.String("addr", listen),
		zap.String("version", version),
		zap.Int("tiers", cat.Len()))

	if err := http.ListenAndServe(listen, mux); err != nil {
		logging.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
