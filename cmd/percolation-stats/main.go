// Command percolation-stats estimates the percolation threshold of an n×n
// grid from T Monte Carlo trials.
//
// Usage:
//
//	percolation-stats [-workers k] [-seed s] [-backwash=false] [-v] n T
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/percolate/stats"
)

var (
	log = logrus.New()

	workers  int
	seed     uint64
	backwash bool
	verbose  bool
)

func init() {
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "number of trials run in parallel")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.BoolVar(&backwash, "backwash", true, "use the single union-find IsFull strategy")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] n T\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// positiveArg parses the i-th positional argument as a positive integer.
func positiveArg(i int, name string) int {
	v, err := strconv.Atoi(flag.Arg(i))
	if err != nil || v <= 0 {
		log.Fatalf("%s must be a positive integer, got %q", name, flag.Arg(i))
	}
	return v
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flag.Parse()
	setupLogging()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	n := positiveArg(0, "n")
	trials := positiveArg(1, "T")
	if workers < 1 {
		log.Fatalf("workers must be positive, got %d", workers)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	log.WithFields(logrus.Fields{
		"n":        n,
		"trials":   trials,
		"workers":  workers,
		"seed":     seed,
		"backwash": backwash,
	}).Debug("config")

	ps, err := stats.Run(ctx, n, trials,
		stats.WithWorkers(workers),
		stats.WithSeed(seed),
		stats.WithBackwash(backwash),
		stats.WithLogger(log),
	)
	if err != nil {
		log.Fatal("simulation failed: ", err)
	}

	fmt.Printf("mean                    = %v\n", ps.Mean())
	fmt.Printf("stddev                  = %v\n", ps.Stddev())
	fmt.Printf("95%% confidence interval = [%v, %v]\n", ps.ConfidenceLo(), ps.ConfidenceHi())
}
