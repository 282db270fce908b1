//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

package ngram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testARPA = `\data\
ngram 1=4
ngram 2=2

\1-grams:
-1.0	<s>	-0.5
-2.0	</s>
-1.3	مرحبا	-0.2
-3.0	<unk>

\2-grams:
-0.4	<s> مرحبا
-0.7	مرحبا </s>

\end\
`

func parseTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := Parse(strings.NewReader(testARPA))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := parseTestModel(t)
	require.Equal(t, 2, m.Order())
}

func TestScoreKnownSentence(t *testing.T) {
	m := parseTestModel(t)

	// p(مرحبا|<s>) + p(</s>|مرحبا) from the bigram table.
	got, err := m.Score("مرحبا")
	require.NoError(t, err)
	require.InDelta(t, -1.1, got, 1e-9)
}

func TestScoreBacksOff(t *testing.T) {
	m := parseTestModel(t)

	// "بكم" is out of vocabulary: the bigram lookup backs off through <s>
	// (-0.5) to <unk> (-3.0), then </s> backs off to its unigram (-2.0).
	got, err := m.Score("بكم")
	require.NoError(t, err)
	require.InDelta(t, -5.5, got, 1e-9)
}

func TestScoreDeterministic(t *testing.T) {
	m := parseTestModel(t)

	first, err := m.Score("مرحبا بكم")
	require.NoError(t, err)
	second, err := m.Score("مرحبا بكم")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestScoreEmptyText(t *testing.T) {
	m := parseTestModel(t)

	// Only </s> given <s> is scored: no bigram "<s> </s>", so back off
	// through <s> (-0.5) to the </s> unigram (-2.0).
	got, err := m.Score("")
	require.NoError(t, err)
	require.InDelta(t, -2.5, got, 1e-9)
}

func TestScoreUnloadedModel(t *testing.T) {
	var m *Model
	_, err := m.Score("مرحبا")
	require.Error(t, err)

	_, err = (&Model{}).Score("مرحبا")
	require.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"missing end marker", "\\data\\\nngram 1=1\n\\1-grams:\n-1.0\t<s>\n"},
		{"no counts", "\\data\\\n\\end\\\n"},
		{"bad log probability", "\\data\\\nngram 1=1\n\\1-grams:\nxx\t<s>\n\\end\\\n"},
		{"entry outside section", "\\data\\\nngram 1=1\n-1.0\t<s>\n\\end\\\n"},
		{"section above declared order", "\\data\\\nngram 1=1\n\\2-grams:\n-1.0\ta b\n\\end\\\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.in))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lm.arpa")
	require.NoError(t, os.WriteFile(path, []byte(testARPA), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, m.Order())

	_, err = Load(filepath.Join(t.TempDir(), "missing.arpa"))
	require.Error(t, err)
}
