//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package scorer adapts a language model into the plausibility oracle used
// by the chunk optimizer.
package scorer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sawtlabs/uttseg/arabic"
)

// ErrUnavailable reports that the scoring model cannot be reached or failed
// internally. It is fatal for the in-flight segmentation call; the engine
// defines no degraded fallback.
var ErrUnavailable = errors.New("scoring model unavailable")

// Model is the opaque scoring oracle. Score takes a normalized,
// space-joined Arabic string and returns a log-likelihood style value;
// only relative ordering between calls against the same model is
// meaningful. Implementations must be safe for concurrent use: the engine
// scores from many simultaneous segmentation calls against one loaded,
// read-only model.
type Model interface {
	Score(text string) (float64, error)
}

// Scorer joins and normalizes word sequences before delegating to a Model.
type Scorer struct {
	model Model
}

// New returns a Scorer backed by model.
func New(model Model) *Scorer {
	return &Scorer{model: model}
}

// Score joins words with single spaces, normalizes the result for scoring
// (arabic.Normalize) and returns the model's plausibility score. Higher is
// more linguistically natural. Failures wrap ErrUnavailable.
func (s *Scorer) Score(words []string) (float64, error) {
	text := arabic.Normalize(strings.Join(words, " "))
	score, err := s.model.Score(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return score, nil
}
