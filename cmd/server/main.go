package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logogrid/internal/config"
	"logogrid/internal/handlers"
	"logogrid/internal/logging"
	"logogrid/internal/logos"
)

func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.WeakSecret() {
		logger.Warn("SESSION_SECRET is unset or default; session tokens can be forged")
	}
	pool, err := logos.Resolve(cfg.LogoPool, cfg.LogoPoolFile)
	if err != nil {
		logger.Fatal("load logo pool", zap.Error(err))
	}
	if pool.Len() < logos.SelectionSize {
		logger.Warn("logo pool smaller than grid", zap.Int("pool_size", pool.Len()), zap.Int("dynamic_cells", logos.SelectionSize))
	}

	var rng logos.Source
	if cfg.ShuffleSeed != 0 {
		rng = logos.NewXorShift32(cfg.ShuffleSeed)
	} else {
		rng = logos.NewRandomSource()
	}

	if gin.Mode() != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := handlers.NewServer(cfg, logos.NewSelector(pool, rng), logger)
	r := srv.Router()

	logger.Info("server listening", zap.String("addr", cfg.HTTPAddr), zap.Int("pool_size", pool.Len()))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
