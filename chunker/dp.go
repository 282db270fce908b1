//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

package chunker

import "math"

// optimize partitions words into contiguous chunks of at most maxWords
// words each, maximizing the summed plausibility score of the chunks.
// Sequences within the cap come back as singleton chunks, one word each.
//
// optimal[j] holds the best total score of any partition of words[0..j]
// whose last chunk ends at j; track[j] holds the end index of the previous
// chunk on that best path. Updates use strict inequality, so ties keep the
// earliest-discovered predecessor. Cost is O(n * maxWords) score calls.
func (c *Chunker) optimize(words []string) ([][]string, error) {
	n := len(words)
	if n == 0 {
		return nil, nil
	}
	if n <= c.maxWords {
		chunks := make([][]string, n)
		for i, w := range words {
			chunks[i] = []string{w}
		}
		return chunks, nil
	}

	optimal := make([]float64, n)
	track := make([]int, n)
	for i := range optimal {
		optimal[i] = math.Inf(-1)
		track[i] = -1
	}
	for j := 0; j < c.maxWords && j < n; j++ {
		score, err := c.scorer.Score(words[:j+1])
		if err != nil {
			return nil, err
		}
		optimal[j] = score
	}
	for i := 0; i < n; i++ {
		for j := 1; j <= c.maxWords; j++ {
			if i+j >= n {
				break
			}
			score, err := c.scorer.Score(words[i+1 : i+j+1])
			if err != nil {
				return nil, err
			}
			if candidate := optimal[i] + score; candidate > optimal[i+j] {
				optimal[i+j] = candidate
				track[i+j] = i
			}
		}
	}

	// Walk the track array back from the last word to recover the chunk
	// end indices, then emit the chunks left to right.
	bounds := []int{n}
	for prev := track[n-1]; prev != -1; prev = track[prev] {
		bounds = append(bounds, prev)
	}
	chunks := make([][]string, 0, len(bounds))
	idx := 0
	for k := len(bounds) - 1; k >= 0; k-- {
		end := bounds[k] + 1
		if end > n {
			end = n
		}
		chunks = append(chunks, words[idx:end])
		idx = end
	}
	return chunks, nil
}
