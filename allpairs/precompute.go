// SPDX-License-Identifier: MIT
// Package: campusnav/allpairs
//
// precompute.go - the offline pipeline: normalize, build the adjacency once,
// run the engine from every source.
//
// Concurrency model:
//   - Sources are independent; the adjacency is shared read-only.
//   - Each source writes only its own slot in pre-sized slices, so no lock is
//     held on the hot path. The slots are folded into maps after the run.
//   - errgroup bounds the fan-out (SetLimit) and cancels remaining sources on
//     the first failure unless errors are collected.

package allpairs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/mapdata"
	"github.com/katalvlaran/campusnav/normalize"
)

// Precompute normalizes raw and computes the all-pairs table.
//
// Errors from normalization are returned unchanged and no shortest-path work
// is done. Engine errors are wrapped with the failing source's dense id.
func Precompute(ctx context.Context, raw *mapdata.RawMap, opts ...Option) (*Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var nopts []normalize.Option
	nopts = append(nopts, normalize.WithLogger(cfg.logger.Named("normalize")))
	if cfg.undirected {
		nopts = append(nopts, normalize.WithUndirected())
	}

	norm, err := normalize.Normalize(raw, nopts...)
	if err != nil {
		return nil, err
	}

	return FromNormalized(ctx, norm, opts...)
}

// FromNormalized computes the all-pairs table for an already normalized map.
func FromNormalized(ctx context.Context, norm *normalize.Result, opts ...Option) (*Result, error) {
	if norm == nil || norm.Graph == nil {
		return nil, normalize.ErrNilMap
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.method == MethodFloydWarshall && cfg.keepPaths {
		return nil, fmt.Errorf("%w: %s cannot retain paths", ErrUnsupportedMethod, cfg.method)
	}

	g := norm.Graph
	adj, err := dijkstra.NewAdjacency(g.NodeCount, g.Edges)
	if err != nil {
		return nil, err
	}

	log := cfg.logger
	log.Info("precompute started",
		"method", cfg.method.String(),
		"nodes", adj.NodeCount(),
		"arcs", adj.ArcCount(),
		"workers", cfg.workers)
	start := time.Now()

	res := &Result{
		Nodes:  g.Nodes,
		Edges:  g.Edges,
		Labels: norm.Labels,
		Groups: norm.Groups,
	}

	switch cfg.method {
	case MethodDijkstra:
		err = runDijkstra(ctx, adj, res, cfg)
	case MethodFloydWarshall:
		res.ShortestPaths, err = floydWarshall(ctx, g.NodeCount, g.Edges)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedMethod, cfg.method)
	}
	if err != nil {
		log.Error("precompute failed", "error", err)
		return nil, err
	}

	log.Info("precompute finished",
		"pairs", res.Pairs(),
		"elapsed", time.Since(start).String())

	return res, nil
}

// runDijkstra fills res.ShortestPaths (and res.Predecessors) from every source.
func runDijkstra(ctx context.Context, adj *dijkstra.Adjacency, res *Result, cfg options) error {
	n := adj.NodeCount()

	// Slot s-1 belongs to source s.
	dists := make([]dijkstra.Distances, n)
	var prevs []map[int]int
	if cfg.keepPaths {
		prevs = make([]map[int]int, n)
	}

	one := func(ctx context.Context, s int) error {
		r, err := runSource(ctx, adj, s, cfg)
		if err != nil {
			return fmt.Errorf("allpairs: source %d: %w", s, err)
		}
		dists[s-1] = r.Dist
		if prevs != nil {
			prevs[s-1] = r.Prev
		}

		return nil
	}

	var err error
	if cfg.workers <= 1 {
		err = runSequential(ctx, n, cfg, one)
	} else {
		err = runParallel(ctx, n, cfg, one)
	}
	if err != nil {
		return err
	}

	res.ShortestPaths = make(Table, n)
	for i, d := range dists {
		res.ShortestPaths[i+1] = d
	}
	if prevs != nil {
		res.Predecessors = make(map[int]map[int]int, n)
		for i, p := range prevs {
			res.Predecessors[i+1] = p
		}
	}

	return nil
}

// runSource runs the engine for one source under the optional per-source deadline.
func runSource(ctx context.Context, adj *dijkstra.Adjacency, s int, cfg options) (*dijkstra.Result, error) {
	if cfg.sourceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.sourceTimeout)
		defer cancel()
	}

	var dopts []dijkstra.Option
	if cfg.keepPaths {
		dopts = append(dopts, dijkstra.WithReturnPath())
	}

	return dijkstra.ShortestPaths(ctx, adj, s, dopts...)
}

func runSequential(ctx context.Context, n int, cfg options, one func(context.Context, int) error) error {
	var merr *multierror.Error
	for s := 1; s <= n; s++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := one(ctx, s); err != nil {
			if !cfg.collectErrors {
				return err
			}
			cfg.logger.Warn("source failed", "source", s, "error", err)
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}

func runParallel(ctx context.Context, n int, cfg options, one func(context.Context, int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	var (
		mu   sync.Mutex
		merr *multierror.Error
	)

	for s := 1; s <= n; s++ {
		if gctx.Err() != nil {
			break
		}
		s := s
		g.Go(func() error {
			err := one(gctx, s)
			if err == nil || !cfg.collectErrors {
				return err
			}
			cfg.logger.Warn("source failed", "source", s, "error", err)
			mu.Lock()
			merr = multierror.Append(merr, err)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// The parent context may have been cancelled between launches.
	if err := ctx.Err(); err != nil {
		return err
	}

	return merr.ErrorOrNil()
}
