package main

import (
	"log"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap.NewProduction: %v\n", err)
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("loadConfig", zap.Error(err))
	}

	s := &server{
		puzzles: bigQueryPuzzles{
			projectID: cfg.ProjectID,
			table:     cfg.Table,
			location:  cfg.Location,
		},
		log: logger.Sugar(),
	}

	funcframework.RegisterHTTPFunction("/pool", s.handlePool)
	funcframework.RegisterHTTPFunction("/variants", s.handleVariants)

	logger.Info("Starting pool function",
		zap.String("host", cfg.Hostname()),
		zap.String("port", cfg.Port),
		zap.String("puzzle_table", cfg.Table),
	)
	if err := funcframework.StartHostPort(cfg.Hostname(), cfg.Port); err != nil {
		logger.Fatal("funcframework.StartHostPort", zap.Error(err))
	}
}
