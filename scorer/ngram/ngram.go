//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package ngram implements a back-off n-gram language model loaded from the
// ARPA text format. A loaded model is read-only and safe for concurrent
// scoring.
package ngram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Sentence framing and vocabulary tokens of the ARPA format.
const (
	BOS     = "<s>"
	EOS     = "</s>"
	Unknown = "<unk>"
)

// oovLogProb is the score assigned to out-of-vocabulary words when the
// model carries no <unk> entry.
const oovLogProb = -100.0

var sectionRe = regexp.MustCompile(`^\\(\d+)-grams:$`)

type entry struct {
	logProb float64
	backoff float64
}

// Model is an n-gram language model with Katz-style back-off.
type Model struct {
	order int
	// grams[n-1] maps a space-joined n-gram to its entry.
	grams []map[string]entry
}

// Load reads an ARPA model from path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	return m, nil
}

// Parse reads an ARPA model from r.
func Parse(r io.Reader) (*Model, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	m := &Model{}
	cur := 0 // order of the section being read, 0 before the first
	ended := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || line == `\data\`:
			continue
		case line == `\end\`:
			ended = true
		case strings.HasPrefix(line, "ngram "):
			n, err := parseCount(line)
			if err != nil {
				return nil, err
			}
			if n > m.order {
				m.order = n
			}
			for len(m.grams) < n {
				m.grams = append(m.grams, map[string]entry{})
			}
		default:
			if sec := sectionRe.FindStringSubmatch(line); sec != nil {
				n, err := strconv.Atoi(sec[1])
				if err != nil || n < 1 || n > m.order {
					return nil, fmt.Errorf("unexpected section %q", line)
				}
				cur = n
				continue
			}
			if cur == 0 {
				return nil, fmt.Errorf("entry outside of a grams section: %q", line)
			}
			if err := m.addEntry(cur, line); err != nil {
				return nil, err
			}
		}
		if ended {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	if !ended {
		return nil, errors.New(`missing \end\ marker`)
	}
	if m.order == 0 {
		return nil, errors.New("no ngram counts declared")
	}
	return m, nil
}

func parseCount(line string) (int, error) {
	// "ngram N=count"
	rest := strings.TrimPrefix(line, "ngram ")
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return 0, fmt.Errorf("malformed count line %q", line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest[:eq]))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("malformed count line %q", line)
	}
	return n, nil
}

func (m *Model) addEntry(order int, line string) error {
	fields := strings.Fields(line)
	if len(fields) != order+1 && len(fields) != order+2 {
		return fmt.Errorf("malformed %d-gram entry %q", order, line)
	}
	lp, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fmt.Errorf("malformed log probability in %q", line)
	}
	e := entry{logProb: lp}
	if len(fields) == order+2 {
		bo, err := strconv.ParseFloat(fields[order+1], 64)
		if err != nil {
			return fmt.Errorf("malformed backoff weight in %q", line)
		}
		e.backoff = bo
	}
	m.grams[order-1][strings.Join(fields[1:order+1], " ")] = e
	return nil
}

// Order returns the highest n-gram order of the model.
func (m *Model) Order() int {
	return m.order
}

// Score returns the total log10 probability of text, framed with <s> and
// </s> the way kenlm scores full sentences. The <s> token itself is not
// scored. It is an error to score with an unloaded model.
func (m *Model) Score(text string) (float64, error) {
	if m == nil || m.order == 0 {
		return 0, errors.New("ngram model not loaded")
	}
	seq := make([]string, 0, len(text)/4+2)
	seq = append(seq, BOS)
	seq = append(seq, strings.Fields(text)...)
	seq = append(seq, EOS)

	var total float64
	for i := 1; i < len(seq); i++ {
		lo := i - (m.order - 1)
		if lo < 0 {
			lo = 0
		}
		total += m.condProb(seq[lo:i], seq[i])
	}
	return total, nil
}

// condProb returns log10 p(w | ctx) with back-off: if the full n-gram is
// unknown, the context's backoff weight is added and the context shortened
// until a hit or the unigram floor.
func (m *Model) condProb(ctx []string, w string) float64 {
	if max := m.order - 1; len(ctx) > max {
		ctx = ctx[len(ctx)-max:]
	}
	if e, ok := m.lookup(ctx, w); ok {
		return e.logProb
	}
	if len(ctx) == 0 {
		if e, ok := m.lookup(nil, Unknown); ok {
			return e.logProb
		}
		return oovLogProb
	}
	var backoff float64
	if e, ok := m.lookup(ctx[:len(ctx)-1], ctx[len(ctx)-1]); ok {
		backoff = e.backoff
	}
	return backoff + m.condProb(ctx[1:], w)
}

func (m *Model) lookup(ctx []string, w string) (entry, bool) {
	n := len(ctx) + 1
	if n > len(m.grams) {
		return entry{}, false
	}
	key := w
	if len(ctx) > 0 {
		key = strings.Join(ctx, " ") + " " + w
	}
	e, ok := m.grams[n-1][key]
	return e, ok
}
