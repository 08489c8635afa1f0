// Command pathsearch finds a path from a start node to one of several goal
// nodes in a weighted graph with BFS, DFS, UCS, Greedy or A*.
//
//	pathsearch search --edges 'A,B=1+A,C=2+B,D=3+C,D=1' --start A --goals D -a UCS
//	pathsearch compare --file problem.yaml
//	pathsearch prompt
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathsearch/engine"
	"github.com/katalvlaran/pathsearch/heuristic"
)

// CLI holds the global flags and the subcommands; every global flag can also be set
// through its PATHSEARCH_* environment variable.
type CLI struct {
	Directed         bool          `help:"Treat edges as one-way (problem files set this themselves)" env:"PATHSEARCH_DIRECTED"`
	Heuristic        string        `help:"A* heuristic: ${enum}" enum:"shortest-path,table,zero" default:"shortest-path" env:"PATHSEARCH_HEURISTIC"`
	HeuristicFailure string        `name:"heuristic-failure" help:"What A* does when the heuristic finds no path: ${enum}" enum:"infinite,abort" default:"infinite" env:"PATHSEARCH_HEURISTIC_FAILURE"`
	CacheSize        int           `name:"cache-size" help:"Memoise up to this many heuristic estimates (0 disables)" default:"4096" env:"PATHSEARCH_CACHE_SIZE"`
	MaxExpansions    int           `name:"max-expansions" help:"Fail a search after this many expansions (0 is unlimited)" default:"0" env:"PATHSEARCH_MAX_EXPANSIONS"`
	Timeout          time.Duration `help:"Cancel searches after this long (0 is no limit)" default:"0s" env:"PATHSEARCH_TIMEOUT"`
	Debug            bool          `help:"Log every search and expansion to stderr" env:"PATHSEARCH_DEBUG"`
	MetricsFile      string        `name:"metrics-file" placeholder:"PATH" help:"Write Prometheus metrics in text format to PATH on exit" env:"PATHSEARCH_METRICS_FILE"`

	Search  searchCmd  `cmd:"" help:"Run one algorithm and print the path and cost"`
	Compare compareCmd `cmd:"" help:"Run several algorithms side by side"`
	Prompt  promptCmd  `cmd:"" help:"Enter the problem interactively"`
}

func main() {
	var params CLI
	kctx := kong.Parse(&params,
		kong.Name("pathsearch"),
		kong.Description("Weighted graph path search with BFS, DFS, UCS, Greedy and A*."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt, err := newRuntime(ctx, params, os.Stdin, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)

	err = kctx.Run(rt)
	if params.MetricsFile != "" {
		if werr := prometheus.WriteToTextfile(params.MetricsFile, rt.registry); werr != nil {
			rt.log.Error("writing metrics", "path", params.MetricsFile, "err", werr)
		}
	}
	kctx.FatalIfErrorf(err)
}

// runtime is what every subcommand needs: I/O, the engine and the options
// derived from global flags.
type runtime struct {
	ctx      context.Context
	in       io.Reader
	out      io.Writer
	log      log15.Logger
	registry *prometheus.Registry
	engine   *engine.Engine

	directed      bool
	heuristic     string
	failure       heuristic.FailurePolicy
	cacheSize     int
	maxExpansions int
	timeout       time.Duration
}

func newRuntime(ctx context.Context, params CLI, in io.Reader, out, errOut io.Writer) (*runtime, error) {
	failure, err := heuristic.ParseFailurePolicy(params.HeuristicFailure)
	if err != nil {
		return nil, err
	}

	lvl := log15.LvlInfo
	if params.Debug {
		lvl = log15.LvlDebug
	}
	root := log15.New()
	root.SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(errOut, log15.LogfmtFormat())))

	reg := prometheus.NewRegistry()
	eng := engine.New(
		engine.WithLogger(root.New("module", "engine")),
		engine.WithMetrics(engine.NewMetrics(reg)),
	)

	return &runtime{
		ctx:           ctx,
		in:            in,
		out:           out,
		log:           root.New("module", "cli"),
		registry:      reg,
		engine:        eng,
		directed:      params.Directed,
		heuristic:     params.Heuristic,
		failure:       failure,
		cacheSize:     params.CacheSize,
		maxExpansions: params.MaxExpansions,
		timeout:       params.Timeout,
	}, nil
}

// searchContext applies --timeout.
func (rt *runtime) searchContext() (context.Context, context.CancelFunc) {
	if rt.timeout > 0 {
		return context.WithTimeout(rt.ctx, rt.timeout)
	}

	return context.WithCancel(rt.ctx)
}

func (rt *runtime) printf(format string, args ...interface{}) {
	fmt.Fprintf(rt.out, format, args...)
}
