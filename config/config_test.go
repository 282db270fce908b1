//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.MaxWordsPerSentence)
	require.Equal(t, 100, cfg.MaxTotalWords)
	require.True(t, cfg.SplitByPunctuation)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("UTTSEG_MAX_WORDS_PER_SENTENCE", "7")
	t.Setenv("UTTSEG_MAX_TOTAL_WORDS", "40")
	t.Setenv("UTTSEG_SPLIT_BY_PUNCTUATION", "off")
	t.Setenv("UTTSEG_MODEL_PATH", "/srv/lm.arpa")
	t.Setenv("UTTSEG_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7, cfg.MaxWordsPerSentence)
	require.Equal(t, 40, cfg.MaxTotalWords)
	require.False(t, cfg.SplitByPunctuation)
	require.Equal(t, "/srv/lm.arpa", cfg.ModelPath)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestBoolRepresentations(t *testing.T) {
	for _, v := range []string{"y", "YES", "True", "on", "1"} {
		t.Setenv("UTTSEG_SPLIT_BY_PUNCTUATION", v)
		cfg, err := Load()
		require.NoError(t, err, "value %q", v)
		require.True(t, cfg.SplitByPunctuation, "value %q", v)
	}
	for _, v := range []string{"n", "No", "FALSE", "off", "0"} {
		t.Setenv("UTTSEG_SPLIT_BY_PUNCTUATION", v)
		cfg, err := Load()
		require.NoError(t, err, "value %q", v)
		require.False(t, cfg.SplitByPunctuation, "value %q", v)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("UTTSEG_SPLIT_BY_PUNCTUATION", "maybe")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad int", func(t *testing.T) {
		t.Setenv("UTTSEG_MAX_TOTAL_WORDS", "many")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("non-positive cap", func(t *testing.T) {
		t.Setenv("UTTSEG_MAX_WORDS_PER_SENTENCE", "0")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("total below per sentence", func(t *testing.T) {
		t.Setenv("UTTSEG_MAX_WORDS_PER_SENTENCE", "20")
		t.Setenv("UTTSEG_MAX_TOTAL_WORDS", "10")
		_, err := Load()
		require.Error(t, err)
	})
}
