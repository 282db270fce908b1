//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/sawtlabs/uttseg/chunker"
	"github.com/sawtlabs/uttseg/log"
	"github.com/sawtlabs/uttseg/scorer"
	"github.com/sawtlabs/uttseg/segmenter"
)

const (
	statusSuccess = "SUCCESS"
	statusFail    = "FAIL"
)

type segmentRequest struct {
	Text          string `json:"text"`
	SegmenterType string `json:"segmenter_type"`
	ParseSSML     bool   `json:"parse_ssml"`
}

type segmentResponse struct {
	Status  string   `json:"status"`
	Results []string `json:"results"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type batchItemResponse struct {
	Status  string   `json:"status"`
	Results []string `json:"results,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (s *Server) handleChunker(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSegmentRequest(r)
	if err != nil {
		s.writeError(r, w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Text == "" {
		s.writeError(r, w, http.StatusBadRequest, "text is required")
		return
	}

	start := time.Now()
	results, err := s.engine.Segment(req.Text, chunker.SegmenterType(req.SegmenterType), req.ParseSSML)
	s.observe(r, time.Since(start), err)
	if err != nil {
		s.writeError(r, w, statusFor(err), reasonFor(err))
		return
	}
	writeJSON(w, http.StatusOK, segmentResponse{Status: statusSuccess, Results: results})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []segmentRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		s.writeError(r, w, http.StatusBadRequest, "invalid request body")
		return
	}

	batch := make([]segmenter.Request, len(reqs))
	for i, req := range reqs {
		if req.SegmenterType == "" {
			req.SegmenterType = string(chunker.SegmenterLM)
		}
		batch[i] = segmenter.Request{
			Text:          req.Text,
			SegmenterType: chunker.SegmenterType(req.SegmenterType),
			ParseMarkup:   req.ParseSSML,
		}
	}

	start := time.Now()
	results, err := s.engine.SegmentBatch(batch)
	s.observe(r, time.Since(start), err)
	if err != nil {
		s.writeError(r, w, http.StatusInternalServerError, err.Error())
		return
	}

	items := make([]batchItemResponse, len(results))
	for i, res := range results {
		if res.Err != nil {
			items[i] = batchItemResponse{Status: statusFail, Error: reasonFor(res.Err)}
			continue
		}
		items[i] = batchItemResponse{Status: statusSuccess, Results: res.Utterances}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "SERVING"})
}

// decodeSegmentRequest accepts query parameters on GET and a JSON body on
// POST, the two sources the original service recognized.
func decodeSegmentRequest(r *http.Request) (segmentRequest, error) {
	req := segmentRequest{SegmenterType: string(chunker.SegmenterLM)}

	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, errors.New("invalid request body")
		}
		if req.SegmenterType == "" {
			req.SegmenterType = string(chunker.SegmenterLM)
		}
		return req, nil
	}

	q := r.URL.Query()
	req.Text = q.Get("text")
	if v := q.Get("segmenter_type"); v != "" {
		req.SegmenterType = v
	}
	if v := q.Get("parse_ssml"); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			req.ParseSSML = true
		case "0", "false", "no", "off":
			req.ParseSSML = false
		default:
			return req, errors.New("invalid parse_ssml value")
		}
	}
	return req, nil
}

// statusFor maps engine error kinds to HTTP status codes.
func statusFor(err error) int {
	var markupErr *segmenter.InvalidMarkupError
	switch {
	case errors.As(err, &markupErr):
		return http.StatusBadRequest
	case errors.Is(err, scorer.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// reasonFor returns the message surfaced to the caller: the verbatim
// verdict reason for markup failures, the error text otherwise.
func reasonFor(err error) string {
	var markupErr *segmenter.InvalidMarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Reason
	}
	return err.Error()
}

func (s *Server) observe(r *http.Request, elapsed time.Duration, err error) {
	status := statusSuccess
	if err != nil {
		status = statusFail
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	if s.requests != nil {
		s.requests.Add(r.Context(), 1, attrs)
	}
	if s.latency != nil {
		s.latency.Record(r.Context(), elapsed.Seconds(), attrs)
	}
}

func (s *Server) writeError(r *http.Request, w http.ResponseWriter, code int, msg string) {
	log.Debugf("request %s failed with %d: %s", r.URL.Path, code, msg)
	writeJSON(w, code, errorResponse{Status: statusFail, Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %v", err)
	}
}
