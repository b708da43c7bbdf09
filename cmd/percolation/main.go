// Command percolation runs a Monte-Carlo estimate of the percolation
// threshold for an n-by-n grid over T independent trials and prints
// the mean, standard deviation, and 95% confidence interval.
//
// Usage:
//
//	percolation <n> <T>
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/algoexercises/percolation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: percolation <n> <T>")
		return 1
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(out, "invalid n: %v\n", err)
		return 1
	}

	trials, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(out, "invalid T: %v\n", err)
		return 1
	}

	start := time.Now()
	stats, err := percolation.NewStats(n, trials, percolation.NewMathRandRNG(time.Now().UnixNano()))
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return 1
	}
	elapsed := time.Since(start)

	lo, hi := stats.ConfidenceInterval()
	fmt.Fprintf(out, "mean = %v\n", stats.Mean())
	fmt.Fprintf(out, "stddev = %v\n", stats.StdDev())
	fmt.Fprintf(out, "95%% interval = [%v, %v]\n", lo, hi)
	fmt.Fprintf(out, "elapsed = %v seconds\n", elapsed.Seconds())

	return 0
}
