// SPDX-License-Identifier: MIT

// Package config loads the TOML file that drives an offline precompute run and
// builds the logger it reports through.
//
// Example:
//
//	[input]
//	path = "data/campus.json"
//	undirected = true
//
//	[output]
//	path = "build/campus.cnav"
//
//	[compute]
//	workers = 8
//	method = "dijkstra"
//	source_timeout = "2s"
//	keep_paths = true
//	collect_errors = false
//	verify = true
//
//	[logging]
//	level = "info"
//	logfile = "logs/precompute.log"
//	max_log_size = 100   # megabytes
//	max_log_age = 14     # days
//	json = false
//
// Relative paths are resolved against the directory holding the TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/campusnav/allpairs"
)

var (
	// ErrMissingInput indicates no raw map path was configured.
	ErrMissingInput = errors.New("config: input.path is required")

	// ErrInvalid indicates a setting outside its allowed range.
	ErrInvalid = errors.New("config: invalid setting")

	// ErrUnknownKey indicates a TOML key no section defines, usually a typo.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Duration is a time.Duration written as a string in TOML ("1.5s", "250ms").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Input locates the raw map.
type Input struct {
	Path       string
	Undirected bool
}

// Output locates the artifact.
type Output struct {
	Path string
}

// Compute tunes the precompute pipeline.
type Compute struct {
	Workers       int
	Method        string
	SourceTimeout Duration `toml:"source_timeout"`
	KeepPaths     bool     `toml:"keep_paths"`
	CollectErrors bool     `toml:"collect_errors"`
	Verify        bool
}

// Logging configures the hclog logger. An empty Logfile logs to the
// writer passed to Logger; otherwise the file rotates by size and age.
type Logging struct {
	Level   string
	Logfile string
	MaxSize int `toml:"max_log_size"`
	MaxAge  int `toml:"max_log_age"`
	JSON    bool
}

// Config is the whole file.
type Config struct {
	Input   Input
	Output  Output
	Compute Compute
	Logging Logging
}

// Default returns the settings used for keys the file leaves out.
func Default() Config {
	return Config{
		Output: Output{Path: "campus.cnav"},
		Compute: Compute{
			Workers: runtime.NumCPU(),
			Method:  allpairs.MethodDijkstra.String(),
		},
		Logging: Logging{
			Level:   "info",
			MaxSize: 100,
			MaxAge:  30,
		},
	}
}

// Load decodes the TOML file at path over the defaults, resolves relative
// paths and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: could not decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if err := cfg.resolvePaths(filepath.Dir(path)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolvePaths makes every relative path absolute against dir.
func (c *Config) resolvePaths(dir string) error {
	for _, p := range []*string{&c.Input.Path, &c.Output.Path, &c.Logging.Logfile} {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, *p))
		if err != nil {
			return fmt.Errorf("config: converting %q to an absolute path: %w", *p, err)
		}
		*p = abs
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var merr *multierror.Error

	if c.Input.Path == "" {
		merr = multierror.Append(merr, ErrMissingInput)
	}
	if c.Output.Path == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: output.path is empty", ErrInvalid))
	}
	if c.Compute.Workers < 1 {
		merr = multierror.Append(merr, fmt.Errorf("%w: compute.workers=%d, want ≥ 1", ErrInvalid, c.Compute.Workers))
	}
	method, err := allpairs.ParseMethod(c.Compute.Method)
	if err != nil {
		merr = multierror.Append(merr, fmt.Errorf("%w: compute.method: %v", ErrInvalid, err))
	} else if method == allpairs.MethodFloydWarshall && c.Compute.KeepPaths {
		merr = multierror.Append(merr, fmt.Errorf("%w: compute.keep_paths needs method dijkstra", ErrInvalid))
	}
	if c.Compute.SourceTimeout.Duration < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: compute.source_timeout is negative", ErrInvalid))
	}
	if hclog.LevelFromString(c.Logging.Level) == hclog.NoLevel {
		merr = multierror.Append(merr, fmt.Errorf("%w: logging.level=%q", ErrInvalid, c.Logging.Level))
	}
	if c.Logging.MaxSize < 0 || c.Logging.MaxAge < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: logging.max_log_size and max_log_age must be ≥ 0", ErrInvalid))
	}

	return merr.ErrorOrNil()
}

// Options translates the compute settings into pipeline options.
func (c *Config) Options(logger hclog.Logger) []allpairs.Option {
	method, _ := allpairs.ParseMethod(c.Compute.Method)

	opts := []allpairs.Option{
		allpairs.WithWorkers(c.Compute.Workers),
		allpairs.WithMethod(method),
		allpairs.WithSourceTimeout(c.Compute.SourceTimeout.Duration),
		allpairs.WithLogger(logger),
	}
	if c.Input.Undirected {
		opts = append(opts, allpairs.WithUndirected())
	}
	if c.Compute.KeepPaths {
		opts = append(opts, allpairs.WithPaths())
	}
	if c.Compute.CollectErrors {
		opts = append(opts, allpairs.WithCollectErrors())
	}

	return opts
}

// Logger builds the run's logger. Output goes to a rotating file when
// Logfile is set, otherwise to w (os.Stderr if nil).
func (l Logging) Logger(name string, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if l.Logfile != "" {
		w = &lumberjack.Logger{
			Filename: l.Logfile,
			MaxSize:  l.MaxSize, // megabytes
			MaxAge:   l.MaxAge,  // days
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(l.Level),
		Output:     w,
		JSONFormat: l.JSON,
	})
}
