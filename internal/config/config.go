// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON config file, and
// environment variables (including a local .env file).
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// DataDir is the directory holding the local database and saved images.
	DataDir string `json:"data_dir" env:"IHANGIRE_DATA_DIR"`

	// GeminiAPIKey authenticates against the generative AI backend.
	// Never read from the config file; environment only.
	GeminiAPIKey string `json:"-" env:"GEMINI_API_KEY"`

	// FlashModel is the model used for idea discovery, names, and chat.
	FlashModel string `json:"flash_model" env:"IHANGIRE_FLASH_MODEL"`

	// ProModel is the model used for deep-dive idea analysis.
	ProModel string `json:"pro_model" env:"IHANGIRE_PRO_MODEL"`

	// ImageModel is the model used for logo generation.
	ImageModel string `json:"image_model" env:"IHANGIRE_IMAGE_MODEL"`

	// LogLevel sets the zap logging level.
	LogLevel string `json:"log_level" env:"IHANGIRE_LOG_LEVEL"`

	// Config is the path to the JSON config file.
	Config string `json:"-" env:"CONFIG"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.DataDir, "d", ".ihangire", "data directory")
	flag.StringVar(&options.FlashModel, "flash-model", "gemini-2.5-flash", "model for ideas, names, and chat")
	flag.StringVar(&options.ProModel, "pro-model", "gemini-2.5-pro", "model for deep-dive analysis")
	flag.StringVar(&options.ImageModel, "image-model", "imagen-4.0-generate-001", "model for logo generation")
	flag.StringVar(&options.LogLevel, "log-level", "warn", "log level: debug|info|warn|error")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the JSON config file, and environment
// variables (in that order, later sources winning) and returns a pointer to
// the Options struct containing the resolved configuration values.
func Parse() *Options {
	flag.Parse()

	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	// Environment variables override flags and the config file.
	if err := env.Parse(options); err != nil {
		log.Fatalf("error while parsing environment: %v", err)
	}

	return options
}
