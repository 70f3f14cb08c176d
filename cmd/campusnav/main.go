// SPDX-License-Identifier: MIT

// Command campusnav runs the offline shortest-path precompute for a campus map
// and answers directions queries from the resulting artifact.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/campusnav/allpairs"
	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/mapdata"
	"github.com/katalvlaran/campusnav/store"
)

const helpMessage = `
campusnav precomputes walking distances between every pair of campus locations

Usage: campusnav <command> [options]

Commands:

	precompute -config <file.toml> [-in <map.json>] [-out <artifact>]
	    Normalize the raw map, compute the all-pairs table and save it.

	query -table <artifact> -from <name> -to <name>
	    Print the distance (and the route, if paths were kept) between two locations.

	generate -rows <n> -cols <n> [-seed <n>] [-out <map.json>]
	    Write a synthetic grid campus as a raw map, for trying the pipeline out.

	help
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, helpMessage)
		return 2
	}

	var err error
	switch args[0] {
	case "precompute":
		err = cmdPrecompute(ctx, args[1:], stderr)
	case "query":
		err = cmdQuery(args[1:], stdout, stderr)
	case "generate":
		err = cmdGenerate(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, helpMessage)
		return 0
	default:
		fmt.Fprintf(stderr, "campusnav: unknown command %q\n%s", args[0], helpMessage)
		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "campusnav %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func cmdPrecompute(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("precompute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "campusnav.toml", "TOML configuration file")
	in := fs.String("in", "", "raw map JSON; overrides input.path")
	out := fs.String("out", "", "artifact path; overrides output.path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *in != "" {
		cfg.Input.Path = *in
	}
	if *out != "" {
		cfg.Output.Path = *out
	}

	log := cfg.Logging.Logger("campusnav", stderr)
	start := time.Now()

	raw, err := mapdata.LoadFile(cfg.Input.Path)
	if err != nil {
		return err
	}
	log.Info("raw map loaded", "path", cfg.Input.Path, "nodes", len(raw.Nodes), "links", len(raw.Links))

	res, err := allpairs.Precompute(ctx, raw, cfg.Options(log)...)
	if err != nil {
		return err
	}
	if cfg.Compute.Verify {
		if err := res.Verify(); err != nil {
			return err
		}
		log.Debug("table verified")
	}

	n, err := store.SaveFile(cfg.Output.Path, res, store.WithMethod(cfg.Compute.Method))
	if err != nil {
		return err
	}
	log.Info("artifact written",
		"path", cfg.Output.Path,
		"size", humanize.Bytes(uint64(n)),
		"pairs", humanize.Comma(int64(res.Pairs())),
		"elapsed", time.Since(start).Round(time.Millisecond).String())

	return nil
}

func cmdQuery(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(stderr)
	table := fs.String("table", "campus.cnav", "artifact written by precompute")
	from := fs.String("from", "", "start location name")
	to := fs.String("to", "", "destination location name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" {
		return errors.New("-from and -to are required")
	}

	art, err := store.LoadFile(*table)
	if err != nil {
		return err
	}
	res := art.Result

	if res.Predecessors == nil {
		d, err := res.Distance(*from, *to)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s → %s: %.1f m\n", *from, *to, d)
		return nil
	}

	route, d, err := res.Route(*from, *to)
	if err != nil {
		return err
	}
	names := make([]string, len(route))
	for i, n := range route {
		names[i] = n.Name
	}
	fmt.Fprintf(stdout, "%s: %.1f m\n", strings.Join(names, " → "), d)
	return nil
}

func cmdGenerate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rows := fs.Int("rows", 10, "grid rows")
	cols := fs.Int("cols", 10, "grid columns")
	seed := fs.Int64("seed", 1, "random seed for distances")
	unnamed := fs.Int("unnamed-every", 7, "leave every n-th location unnamed; 0 names all")
	out := fs.String("out", "", "output file; stdout if empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := builder.BuildMap([]builder.BuilderOption{
		builder.WithSeed(*seed),
		builder.WithIntegerWeight(20, 200),
		builder.WithSymbNumb("n"),
		builder.WithNameFn(builder.BuildingNames("Building", *unnamed)),
	}, builder.Grid(*rows, *cols))
	if err != nil {
		return err
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := mapdata.Encode(w, raw); err != nil {
		return err
	}
	if *out != "" {
		hclog.New(&hclog.LoggerOptions{Name: "campusnav", Output: stderr}).
			Info("raw map written", "path", *out, "nodes", len(raw.Nodes), "links", len(raw.Links))
	}
	return nil
}
