//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package chunker splits long Arabic text into bounded-length utterances
// suitable for speech synthesis. Text is first split at recognized
// punctuation, each long segment is re-partitioned by a language-model
// driven dynamic program, and the resulting chunks are greedily merged into
// sentences bounded by per-sentence and total word caps.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sawtlabs/uttseg/arabic"
	"github.com/sawtlabs/uttseg/internal/reclass"
)

// SegmenterType selects how long segments are split.
type SegmenterType string

const (
	// SegmenterLM re-partitions long segments with the language model
	// driven dynamic program.
	SegmenterLM SegmenterType = "lm"
	// SegmenterMax splits every segment word by word. Unrecognized types
	// behave the same way.
	SegmenterMax SegmenterType = "max"
)

// Default word caps, matching the service's configuration defaults.
const (
	DefaultMaxWordsPerSentence = 10
	DefaultMaxTotalWords       = 100
)

// collapseExtra extends the recognized punctuation set for the cleanup
// stage only: these characters take part in punctuation-run collapsing but
// never close a segment or a sentence.
const collapseExtra = "?;-\n@#$="

// Scorer rates the linguistic plausibility of a word sequence. Higher is
// more natural.
type Scorer interface {
	Score(words []string) (float64, error)
}

// Chunker is the punctuation splitter and sentence merger. Its
// configuration is fixed at construction and a Chunker is safe for
// concurrent use as long as its Scorer is.
type Chunker struct {
	scorer             Scorer
	maxWords           int
	maxTotalWords      int
	splitByPunctuation bool

	collapseRun *regexp.Regexp
	spaceRun    *regexp.Regexp
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithMaxWordsPerSentence caps the number of words in one output sentence.
func WithMaxWordsPerSentence(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.maxWords = n
		}
	}
}

// WithMaxTotalWords caps the total number of words across all output
// sentences; input beyond the cap is discarded.
func WithMaxTotalWords(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.maxTotalWords = n
		}
	}
}

// WithSplitByPunctuation toggles punctuation-aware splitting. When off, the
// whole input is treated as a single segment and runs of punctuation are
// collapsed in the output.
func WithSplitByPunctuation(enabled bool) Option {
	return func(c *Chunker) {
		c.splitByPunctuation = enabled
	}
}

// New creates a Chunker backed by scorer.
func New(scorer Scorer, opts ...Option) *Chunker {
	c := &Chunker{
		scorer:             scorer,
		maxWords:           DefaultMaxWordsPerSentence,
		maxTotalWords:      DefaultMaxTotalWords,
		splitByPunctuation: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	class := reclass.Class(arabic.SentencePunctuation + collapseExtra)
	c.collapseRun = regexp.MustCompile("([" + class + "])[" + class + " ]+")
	c.spaceRun = regexp.MustCompile(" +")
	return c
}

// Run segments text into cleaned output sentences. See the package comment
// for the pipeline; segType selects dynamic-programming ("lm") or
// word-by-word ("max") splitting of long segments.
func (c *Chunker) Run(text string, segType SegmenterType) ([]string, error) {
	segments := c.splitByPunct(text)

	var chunks [][]string
	for _, segment := range segments {
		words := strings.Fields(segment)
		if segType == SegmenterLM && len(words) > c.maxWords {
			optimal, err := c.optimize(words)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, optimal...)
		} else {
			for _, w := range words {
				chunks = append(chunks, []string{w})
			}
		}
	}

	return c.cleanup(c.assemble(chunks)), nil
}

// splitByPunct scans text rune by rune and closes a raw segment after every
// recognized punctuation mark. The trailing remainder, if any, is kept
// untrimmed.
func (c *Chunker) splitByPunct(text string) []string {
	if !c.splitByPunctuation {
		return []string{text}
	}
	var segments []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if arabic.IsPunct(r) {
			segments = append(segments, strings.TrimSpace(b.String()))
			b.Reset()
		}
	}
	if b.Len() > 0 {
		segments = append(segments, b.String())
	}
	return segments
}

// assemble greedily merges chunks into sentences. A sentence closes when
// appending the next chunk would exceed the per-sentence cap, or when the
// previous sentence already ends in punctuation (punctuation-aware mode).
// Once the total word cap would be exceeded, the remaining chunks are
// discarded entirely; this is a designed truncation, not an error.
func (c *Chunker) assemble(chunks [][]string) [][]string {
	var sentences [][]string
	var sentence []string
	total := 0
	for _, chunk := range chunks {
		if total+len(chunk) > c.maxTotalWords {
			break
		}
		total += len(chunk)

		if len(sentence)+len(chunk) > c.maxWords ||
			(c.splitByPunctuation && endsWithPunct(sentence)) {
			sentences = append(sentences, sentence)
			sentence = nil
		}
		sentence = append(sentence, chunk...)
	}
	if total <= c.maxTotalWords && len(sentence) > 0 {
		sentences = append(sentences, sentence)
	}
	return sentences
}

// cleanup joins each sentence, drops empty and all-punctuation entries and,
// when punctuation-aware splitting is off, collapses punctuation runs into
// their first mark. Running cleanup on its own output changes nothing.
func (c *Chunker) cleanup(sentences [][]string) []string {
	results := make([]string, 0, len(sentences))
	for _, words := range sentences {
		sentence := strings.Join(words, " ")
		if sentence == "" || allPunct(sentence) {
			continue
		}
		if !c.splitByPunctuation {
			sentence = c.collapseRun.ReplaceAllString(sentence, " ${1} ")
			sentence = c.spaceRun.ReplaceAllString(sentence, " ")
		}
		if sentence != "" {
			results = append(results, sentence)
		}
	}
	return results
}

// endsWithPunct reports whether the last word of sentence ends in a
// recognized punctuation mark.
func endsWithPunct(sentence []string) bool {
	if len(sentence) == 0 {
		return false
	}
	last := sentence[len(sentence)-1]
	if last == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(last)
	return arabic.IsPunct(r)
}

// allPunct reports whether every rune of s is a recognized punctuation
// mark.
func allPunct(s string) bool {
	for _, r := range s {
		if !arabic.IsPunct(r) {
			return false
		}
	}
	return true
}
