//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package server exposes the segmentation engine over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/sawtlabs/uttseg/log"
	"github.com/sawtlabs/uttseg/segmenter"
)

const meterName = "github.com/sawtlabs/uttseg/server"

// Server routes segmentation requests to an Engine.
type Server struct {
	engine  *segmenter.Engine
	router  *mux.Router
	httpSrv *http.Server

	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// New creates a Server around engine.
func New(engine *segmenter.Engine) *Server {
	s := &Server{
		engine: engine,
		router: mux.NewRouter(),
	}

	meter := otel.Meter(meterName)
	var err error
	s.requests, err = meter.Int64Counter("uttseg.segment.requests",
		metric.WithDescription("Number of segmentation requests by status."))
	if err != nil {
		log.Warnf("create request counter: %v", err)
	}
	s.latency, err = meter.Float64Histogram("uttseg.segment.duration",
		metric.WithDescription("Segmentation request latency."),
		metric.WithUnit("s"))
	if err != nil {
		log.Warnf("create latency histogram: %v", err)
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/chunker", s.handleChunker).Methods(http.MethodGet, http.MethodPost)
	s.router.HandleFunc("/chunker/batch", s.handleBatch).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(requestID(logging(s.router)))
}

// Start listens on addr and serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Infof("http server listening on %s", addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
