//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Command uttsegd serves the Arabic utterance segmentation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sawtlabs/uttseg/config"
	"github.com/sawtlabs/uttseg/log"
	"github.com/sawtlabs/uttseg/scorer"
	"github.com/sawtlabs/uttseg/scorer/ngram"
	"github.com/sawtlabs/uttseg/segmenter"
	"github.com/sawtlabs/uttseg/server"
	"github.com/sawtlabs/uttseg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsEnabled {
		shutdown, err := telemetry.Start(ctx, telemetry.WithServiceName("uttseg"))
		if err != nil {
			log.Fatalf("start telemetry: %v", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				log.Warnf("flush telemetry: %v", err)
			}
		}()
	}

	model, err := ngram.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("load language model: %v", err)
	}
	log.Infof("loaded %d-gram language model from %s", model.Order(), cfg.ModelPath)

	engine := segmenter.New(scorer.New(model),
		segmenter.WithMaxWordsPerSentence(cfg.MaxWordsPerSentence),
		segmenter.WithMaxTotalWords(cfg.MaxTotalWords),
		segmenter.WithSplitByPunctuation(cfg.SplitByPunctuation),
		segmenter.WithWorkers(cfg.Workers),
	)

	srv := server.New(engine)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("shutdown http server: %v", err)
		}
	}
}
