// Package config provides configuration management for the application.
package config

import (
	"log"

	"github.com/hibare/ArrView/internal/constants"
	"github.com/hibare/GoCommon/v2/pkg/env"
	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
)

// LoggerConfig defines logging configuration parameters.
type LoggerConfig struct {
	Level string
	Mode  string
}

// PlotConfig defines default plot geometry parameters.
type PlotConfig struct {
	Width  int
	Height int
}

// Config represents the complete application configuration.
type Config struct {
	Logger LoggerConfig
	Plot   PlotConfig
}

// Current holds the active application configuration.
var Current *Config

// Load initializes and loads the application configuration.
func Load() {
	env.Load()

	Current = &Config{
		Plot: PlotConfig{
			Width:  env.MustInt("ARRVIEW_PLOT_WIDTH", constants.DefaultPlotWidth),
			Height: env.MustInt("ARRVIEW_PLOT_HEIGHT", constants.DefaultPlotHeight),
		},
		Logger: LoggerConfig{
			Level: env.MustString("ARRVIEW_LOG_LEVEL", commonLogger.DefaultLoggerLevel),
			Mode:  env.MustString("ARRVIEW_LOG_MODE", commonLogger.DefaultLoggerMode),
		},
	}

	if !commonLogger.IsValidLogLevel(Current.Logger.Level) {
		log.Fatal("Error invalid logger level")
	}

	if !commonLogger.IsValidLogMode(Current.Logger.Mode) {
		log.Fatal("Error invalid logger mode")
	}

	commonLogger.InitLogger(&Current.Logger.Level, &Current.Logger.Mode)
}
