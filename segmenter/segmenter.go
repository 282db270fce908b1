//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package segmenter is the caller-facing segmentation engine. It combines
// markup preprocessing with the punctuation-aware chunking pipeline.
package segmenter

import (
	"strings"

	"github.com/sawtlabs/uttseg/chunker"
	"github.com/sawtlabs/uttseg/ssml"
)

// InvalidMarkupError reports that markup validation failed. Reason carries
// the verdict reason verbatim and is suitable for direct display.
type InvalidMarkupError struct {
	Reason string
}

func (e *InvalidMarkupError) Error() string {
	return "invalid markup: " + e.Reason
}

// Engine segments text into bounded-length utterances. An Engine is
// immutable after construction and safe for concurrent use; every call is
// independent of every other call.
type Engine struct {
	chunker  *chunker.Chunker
	maxWords int
	workers  int
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	maxWords      int
	maxTotalWords int
	splitByPunct  bool
	workers       int
}

// WithMaxWordsPerSentence caps the number of words per output sentence.
func WithMaxWordsPerSentence(n int) Option {
	return func(c *engineConfig) {
		if n > 0 {
			c.maxWords = n
		}
	}
}

// WithMaxTotalWords caps the total number of words across all output
// sentences of one call.
func WithMaxTotalWords(n int) Option {
	return func(c *engineConfig) {
		if n > 0 {
			c.maxTotalWords = n
		}
	}
}

// WithSplitByPunctuation toggles punctuation-aware splitting.
func WithSplitByPunctuation(enabled bool) Option {
	return func(c *engineConfig) {
		c.splitByPunct = enabled
	}
}

// WithWorkers sets the goroutine pool size used by SegmentBatch.
func WithWorkers(n int) Option {
	return func(c *engineConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New creates an Engine scoring against sc.
func New(sc chunker.Scorer, opts ...Option) *Engine {
	cfg := engineConfig{
		maxWords:      chunker.DefaultMaxWordsPerSentence,
		maxTotalWords: chunker.DefaultMaxTotalWords,
		splitByPunct:  true,
		workers:       defaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		chunker: chunker.New(sc,
			chunker.WithMaxWordsPerSentence(cfg.maxWords),
			chunker.WithMaxTotalWords(cfg.maxTotalWords),
			chunker.WithSplitByPunctuation(cfg.splitByPunct),
		),
		maxWords: cfg.maxWords,
		workers:  cfg.workers,
	}
}

// Segment splits text into utterances. With parseMarkup set, the text is
// validated against the SSML-lite dialect first (*InvalidMarkupError on
// failure), split along its structural boundaries, and each span longer
// than the per-sentence cap is chunked independently; short spans pass
// through untouched. Without markup the whole text goes through the
// chunking pipeline.
func (e *Engine) Segment(text string, segType chunker.SegmenterType, parseMarkup bool) ([]string, error) {
	if !parseMarkup {
		return e.chunker.Run(text, segType)
	}

	if v := ssml.Validate(text); !v.Valid {
		return nil, &InvalidMarkupError{Reason: v.Reason}
	}

	text = ssml.RemoveTag(text, ssml.TagSpeak)
	var results []string
	for _, span := range ssml.SplitSpans(text) {
		span = strings.TrimSpace(span)
		if ssml.SentenceLength(span) > e.maxWords {
			chunks, err := e.chunker.Run(span, segType)
			if err != nil {
				return nil, err
			}
			results = append(results, chunks...)
		} else if span != "" {
			results = append(results, span)
		}
	}
	return results, nil
}
