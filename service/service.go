// SPDX-License-Identifier: MIT

// Package service runs clustering requests: it resolves parameters,
// tokenizes documents, runs the lingo pipeline and logs each request.
//
// Requests are independent; ClusterAll runs them on a bounded pool of
// workers, each request on its own lingo.Context.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lingo/attrs"
	"github.com/katalvlaran/lingo/config"
	"github.com/katalvlaran/lingo/core"
	"github.com/katalvlaran/lingo/language"
	"github.com/katalvlaran/lingo/lingo"
	"github.com/katalvlaran/lingo/tokenizer"
)

// ErrInvalidRequest reports a request rejected before clustering starts.
var ErrInvalidRequest = errors.New("service: invalid request")

// Service clusters requests. It is safe for concurrent use.
type Service struct {
	lookup  language.Lookup
	logger  zerolog.Logger
	workers int
	base    map[string]any
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the request logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithWorkers bounds ClusterAll concurrency (default runtime.NumCPU()).
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("service.WithWorkers: n=%d must be >= 1", n))
	}

	return func(s *Service) { s.workers = n }
}

// WithLookup sets the language resources (default language.DefaultRegistry()).
func WithLookup(l language.Lookup) Option {
	return func(s *Service) { s.lookup = l }
}

// WithBaseParameters sets parameters every request starts from; request
// Parameters are merged over them key by key. A nested map whose "@type"
// differs from the base replaces the base entry.
func WithBaseParameters(m map[string]any) Option {
	return func(s *Service) { s.base = m }
}

// New returns a Service.
func New(opts ...Option) *Service {
	s := &Service{
		lookup:  language.DefaultRegistry(),
		logger:  zerolog.Nop(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Workers returns the ClusterAll concurrency bound.
func (s *Service) Workers() int { return s.workers }

// Cluster runs one request. A cancelled ctx returns ctx.Err() at once; the
// pipeline finishes in the background and its result is discarded.
// Errors: ErrInvalidRequest, lingo.ErrClusteringFailed, ctx.Err().
func (s *Service) Cluster(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	log := s.logger.With().Int("documents", len(req.Documents)).Str("language", req.Language).Logger()

	params, err := config.Decode(merge(s.base, req.Parameters))
	if err != nil {
		log.Warn().Err(err).Msg("rejected parameters")
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	docs := make([]core.Document, len(req.Documents))
	streams := make([][]core.Token, len(req.Documents))
	for i, d := range req.Documents {
		if docs[i], err = toCore(d, req.Language); err != nil {
			log.Warn().Err(err).Int("document", i).Msg("rejected document")
			return nil, fmt.Errorf("%w: document %d: %w", ErrInvalidRequest, i, err)
		}
		streams[i] = tokenizer.Document(docs[i], d.textFields()...)
	}
	log.Debug().Int("desiredClusters", params.DesiredClusterCount).Msg("clustering")

	type outcome struct {
		res *lingo.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := lingo.Cluster(docs, streams, s.lookup, params)
		done <- outcome{res, err}
	}()

	select {
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Dur("took", time.Since(start)).Msg("abandoned")
		return nil, ctx.Err()
	case out := <-done:
		took := time.Since(start)
		if out.err != nil {
			log.Warn().Err(out.err).Dur("took", took).Msg("clustering failed")
			return nil, out.err
		}
		log.Info().Int("clusters", len(out.res.Clusters)).Dur("took", took).Msg("clustered")
		return &Response{Clusters: fromCore(out.res.Clusters), Took: took}, nil
	}
}

// ClusterAll runs reqs on at most Workers() goroutines. responses[i]
// answers reqs[i] and is nil when that request failed; the returned error
// joins every failure, tagged with its request index.
func (s *Service) ClusterAll(ctx context.Context, reqs []Request) ([]*Response, error) {
	responses := make([]*Response, len(reqs))
	errs := make([]error, len(reqs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(s.workers, len(reqs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				resp, err := s.Cluster(ctx, reqs[i])
				if err != nil {
					errs[i] = fmt.Errorf("request %d: %w", i, err)
					continue
				}
				responses[i] = resp
			}
		}()
	}
	for i := range reqs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return responses, errors.Join(errs...)
}

// merge overlays over on base without modifying either.
func merge(base, over map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		bm, bok := out[k].(map[string]any)
		om, ook := v.(map[string]any)
		if bok && ook && sameType(bm, om) {
			out[k] = merge(bm, om)
			continue
		}
		out[k] = v
	}

	return out
}

func sameType(a, b map[string]any) bool {
	t, ok := b[attrs.TypeKey]
	if !ok {
		return true
	}
	bt, _ := t.(string)
	at, _ := a[attrs.TypeKey].(string)

	return bt != "" && at == bt
}
