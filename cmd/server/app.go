package main

import (
	"log/slog"

	"github.com/phrazzld/brewcalc/internal/config"
	"github.com/phrazzld/brewcalc/internal/domain/gravity"
)

type application struct {
	config *config.Config
	logger *slog.Logger

	calculator gravity.Calculator
}

func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	params := gravity.NewParams(gravity.ParamsConfig{
		PapazianConstant:   cfg.Brewing.PapazianConstant,
		CorrectionConstant: cfg.Brewing.CorrectionConstant,
	})

	return &application{
		config:     cfg,
		logger:     logger,
		calculator: gravity.NewCalculatorWithParams(params),
	}
}
