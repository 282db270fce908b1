//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

package segmenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sawtlabs/uttseg/chunker"
	"github.com/sawtlabs/uttseg/ssml"
)

type stubScorer struct{}

// Score rewards longer windows so the optimizer merges words.
func (stubScorer) Score(words []string) (float64, error) {
	return float64(len(words) * len(words)), nil
}

func TestSegmentPlainText(t *testing.T) {
	e := New(stubScorer{}, WithMaxWordsPerSentence(3))

	got, err := e.Segment("كلمة اولى ثانية ثالثة رابعة", chunker.SegmenterMax, false)
	require.NoError(t, err)
	require.Equal(t, []string{"كلمة اولى ثانية", "ثالثة رابعة"}, got)
}

func TestSegmentMarkupShortSpansPassThrough(t *testing.T) {
	e := New(stubScorer{})

	got, err := e.Segment("<p><s>اهلا بكم</s></p><break/>", chunker.SegmenterLM, true)
	require.NoError(t, err)
	require.Equal(t, []string{"اهلا بكم", "<break/>"}, got)
}

func TestSegmentMarkupLongSpanIsChunked(t *testing.T) {
	e := New(stubScorer{}, WithMaxWordsPerSentence(3))

	long := strings.TrimSpace(strings.Repeat("كلمة ", 8))
	got, err := e.Segment("<s>"+long+"</s>", chunker.SegmenterMax, true)
	require.NoError(t, err)
	require.Greater(t, len(got), 1)
	for _, sentence := range got {
		require.LessOrEqual(t, len(strings.Fields(sentence)), 3)
	}
}

func TestSegmentInvalidMarkup(t *testing.T) {
	e := New(stubScorer{})

	_, err := e.Segment("<p><break/></p>", chunker.SegmenterLM, true)
	require.Error(t, err)

	var markupErr *InvalidMarkupError
	require.ErrorAs(t, err, &markupErr)
	require.Equal(t, ssml.ReasonBreakNotOuter, markupErr.Reason)
}

func TestSegmentMarkupOffNeverValidates(t *testing.T) {
	e := New(stubScorer{})

	// Broken markup is ordinary text when parseMarkup is off.
	got, err := e.Segment("<p><break/></p> اهلا", chunker.SegmenterMax, false)
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestSegmentBatch(t *testing.T) {
	e := New(stubScorer{}, WithMaxWordsPerSentence(3), WithWorkers(4))

	requests := []Request{
		{Text: "كلمة اولى ثانية ثالثة رابعة", SegmenterType: chunker.SegmenterMax},
		{Text: "<p><break/></p>", SegmenterType: chunker.SegmenterLM, ParseMarkup: true},
		{Text: "اهلا.", SegmenterType: chunker.SegmenterLM},
	}

	results, err := e.SegmentBatch(requests)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	require.Equal(t, []string{"كلمة اولى ثانية", "ثالثة رابعة"}, results[0].Utterances)

	var markupErr *InvalidMarkupError
	require.ErrorAs(t, results[1].Err, &markupErr)

	require.NoError(t, results[2].Err)
	require.Equal(t, []string{"اهلا."}, results[2].Utterances)
}

func TestSegmentBatchEmpty(t *testing.T) {
	e := New(stubScorer{})

	results, err := e.SegmentBatch(nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
