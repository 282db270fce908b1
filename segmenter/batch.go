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
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/sawtlabs/uttseg/chunker"
)

const defaultWorkers = 10

// Request is one independent segmentation request within a batch.
type Request struct {
	Text          string
	SegmenterType chunker.SegmenterType
	ParseMarkup   bool
}

// Result carries the outcome of one batch request. Err is set per request;
// one failing request does not affect the others.
type Result struct {
	Utterances []string
	Err        error
}

type batchParam struct {
	idx     int
	req     Request
	engine  *Engine
	results []Result
	wg      *sync.WaitGroup
}

// SegmentBatch runs every request through Segment on a bounded goroutine
// pool and returns the results in request order. Calls are embarrassingly
// parallel: they share only the read-only model behind the scorer.
func (e *Engine) SegmentBatch(requests []Request) ([]Result, error) {
	results := make([]Result, len(requests))
	if len(requests) == 0 {
		return results, nil
	}

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(e.workers, func(args any) {
		param, ok := args.(*batchParam)
		if !ok {
			panic("segment batch pool args type error")
		}
		defer param.wg.Done()
		out, err := param.engine.Segment(
			param.req.Text, param.req.SegmenterType, param.req.ParseMarkup)
		param.results[param.idx] = Result{Utterances: out, Err: err}
	})
	if err != nil {
		return nil, fmt.Errorf("create segment batch pool: %w", err)
	}
	defer pool.Release()

	for i, req := range requests {
		wg.Add(1)
		param := &batchParam{
			idx:     i,
			req:     req,
			engine:  e,
			results: results,
			wg:      &wg,
		}
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			results[i] = Result{Err: fmt.Errorf("submit segment request: %w", err)}
		}
	}
	wg.Wait()
	return results, nil
}
