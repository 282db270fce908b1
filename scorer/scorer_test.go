//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

package scorer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type captureModel struct {
	lastInput string
	score     float64
	err       error
}

func (m *captureModel) Score(text string) (float64, error) {
	m.lastInput = text
	return m.score, m.err
}

func TestScoreNormalizesInput(t *testing.T) {
	m := &captureModel{score: -4.2}
	s := New(m)

	got, err := s.Score([]string{"مَرْحَبًا", "بكم."})
	require.NoError(t, err)
	require.Equal(t, -4.2, got)
	// Joined with a single space, diacritics stripped, punctuation spaced out.
	require.Equal(t, "مرحبا بكم ", m.lastInput)
}

func TestScoreDeterministic(t *testing.T) {
	s := New(&captureModel{score: -1.5})
	words := []string{"مرحبا", "بكم"}

	first, err := s.Score(words)
	require.NoError(t, err)
	second, err := s.Score(words)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestScoreUnavailable(t *testing.T) {
	s := New(&captureModel{err: errors.New("model not loaded")})

	_, err := s.Score([]string{"مرحبا"})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnavailable)
	require.Contains(t, err.Error(), "model not loaded")
}
