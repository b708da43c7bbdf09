// Command kdtree builds a 2-d tree from a point file and reports its
// size and the nearest neighbor to a fixed query point.
//
// Input file format: one "x y" pair per line, each in [0, 1]².
//
// Usage:
//
//	kdtree <path>
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/algoexercises/kdtree"
)

var query = kdtree.Point2D{X: 0.81, Y: 0.30}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: kdtree <path>")
		return 1
	}

	tree, err := buildTree(args[0])
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return 1
	}

	start := time.Now()
	nearest, ok := tree.Nearest(query)
	elapsed := time.Since(start)

	fmt.Fprintf(out, "size = %d\n", tree.Size())
	if !ok {
		fmt.Fprintf(out, "Nearest to (%v, %v): <empty> (%v)\n", query.X, query.Y, elapsed.Seconds())
		return 0
	}

	fmt.Fprintf(out, "Nearest to (%v, %v): (%v, %v) (%v)\n", query.X, query.Y, nearest.X, nearest.Y, elapsed.Seconds())

	return 0
}

func buildTree(path string) (*kdtree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tree := kdtree.New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var x, y float64
		if _, err := fmt.Sscanf(line, "%g %g", &x, &y); err != nil {
			return nil, fmt.Errorf("kdtree driver: bad point line %q: %w", line, err)
		}

		tree.Insert(kdtree.Point2D{X: x, Y: y})
	}

	return tree, scanner.Err()
}
