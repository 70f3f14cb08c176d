// SPDX-License-Identifier: MIT
// Package: campusnav/allpairs
//
// options.go - functional options for Precompute / FromNormalized.

package allpairs

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Method selects the all-pairs algorithm.
type Method int

const (
	// MethodDijkstra runs the heap-based engine once per source: O(V·(V+E) log V).
	MethodDijkstra Method = iota

	// MethodFloydWarshall runs the dense O(V³) closure; only sensible for small maps.
	MethodFloydWarshall
)

// String returns the configuration name of m.
func (m Method) String() string {
	switch m {
	case MethodDijkstra:
		return "dijkstra"
	case MethodFloydWarshall:
		return "floyd-warshall"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a configuration name to a Method. The empty name selects
// MethodDijkstra.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dijkstra":
		return MethodDijkstra, nil
	case "floyd-warshall", "floydwarshall", "fw":
		return MethodFloydWarshall, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
	}
}

// Option configures a precompute run.
type Option func(*options)

type options struct {
	workers       int
	collectErrors bool
	sourceTimeout time.Duration
	method        Method
	keepPaths     bool
	undirected    bool
	logger        hclog.Logger
}

func defaultOptions() options {
	return options{
		workers: 1,
		method:  MethodDijkstra,
		logger:  hclog.NewNullLogger(),
	}
}

// WithWorkers sets how many sources are computed concurrently. n ≤ 1 runs
// sequentially.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithCollectErrors makes a parallel run finish every source and report all
// failures together instead of stopping at the first.
func WithCollectErrors() Option {
	return func(o *options) { o.collectErrors = true }
}

// WithSourceTimeout bounds each single-source run. Zero disables the bound.
func WithSourceTimeout(d time.Duration) Option {
	return func(o *options) { o.sourceTimeout = d }
}

// WithMethod selects the all-pairs algorithm.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithPaths keeps a predecessor tree per source so Route can rebuild node
// sequences. Requires MethodDijkstra.
func WithPaths() Option {
	return func(o *options) { o.keepPaths = true }
}

// WithUndirected treats every raw link as a two-way walkway. Only used by Precompute.
func WithUndirected() Option {
	return func(o *options) { o.undirected = true }
}

// WithLogger sets the logger for progress and failure reports. A nil logger is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
