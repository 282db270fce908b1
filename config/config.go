//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package config loads the process configuration from the environment.
// Values are read once at startup and are immutable afterwards; the engine
// itself never touches the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every recognized environment variable.
const EnvPrefix = "UTTSEG_"

// Config holds the process-wide settings of the segmentation service.
type Config struct {
	// ModelPath points to the ARPA language model file.
	ModelPath string
	// MaxWordsPerSentence caps the number of words per output sentence.
	MaxWordsPerSentence int
	// SplitByPunctuation toggles punctuation-aware splitting.
	SplitByPunctuation bool
	// MaxTotalWords caps the total number of words per request.
	MaxTotalWords int
	// Port is the HTTP listen port.
	Port int
	// Workers bounds concurrent segmentation in batch requests.
	Workers int
	// LogLevel is one of debug, info, warn, error, fatal.
	LogLevel string
	// MetricsEnabled turns on the OTLP metrics exporter.
	MetricsEnabled bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ModelPath:           "models/lm.arpa",
		MaxWordsPerSentence: 10,
		SplitByPunctuation:  true,
		MaxTotalWords:       100,
		Port:                5000,
		Workers:             10,
		LogLevel:            "info",
	}
}

// Load reads a .env file when present, then overlays UTTSEG_-prefixed
// environment variables onto the defaults and validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromEnv(Default())
}

func fromEnv(cfg Config) (Config, error) {
	var err error
	cfg.ModelPath = envString("MODEL_PATH", cfg.ModelPath)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	if cfg.MaxWordsPerSentence, err = envInt("MAX_WORDS_PER_SENTENCE", cfg.MaxWordsPerSentence); err != nil {
		return cfg, err
	}
	if cfg.SplitByPunctuation, err = envBool("SPLIT_BY_PUNCTUATION", cfg.SplitByPunctuation); err != nil {
		return cfg, err
	}
	if cfg.MaxTotalWords, err = envInt("MAX_TOTAL_WORDS", cfg.MaxTotalWords); err != nil {
		return cfg, err
	}
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return cfg, err
	}
	if cfg.Workers, err = envInt("WORKERS", cfg.Workers); err != nil {
		return cfg, err
	}
	if cfg.MetricsEnabled, err = envBool("METRICS_ENABLED", cfg.MetricsEnabled); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.MaxWordsPerSentence <= 0 {
		return fmt.Errorf("max words per sentence must be positive, got %d", c.MaxWordsPerSentence)
	}
	if c.MaxTotalWords < c.MaxWordsPerSentence {
		return fmt.Errorf("max total words (%d) must be at least max words per sentence (%d)",
			c.MaxTotalWords, c.MaxWordsPerSentence)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s%s: invalid integer %q", EnvPrefix, key, v)
	}
	return n, nil
}

// envBool accepts the spellings the original deployment tooling used:
// y/yes/true/on/1 and n/no/false/off/0, case-insensitive.
func envBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "on", "1":
		return true, nil
	case "n", "no", "false", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%s%s: invalid bool representation %q", EnvPrefix, key, v)
	}
}
