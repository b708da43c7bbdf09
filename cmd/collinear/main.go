// Command collinear reads a point file and prints every maximal segment
// of 4 or more collinear points found by the fast algorithm, one segment
// per line, followed by the total count.
//
// Input file format: line 1 is an integer count n >= 1; each of the
// following n lines holds two integers "x y".
//
// Usage:
//
//	collinear <path>
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/algoexercises/collinear"
	"github.com/katalvlaran/algoexercises/geometry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: collinear <path>")
		return 1
	}

	points, err := readPoints(args[0])
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return 1
	}

	fc := collinear.NewFast(points)
	for _, s := range fc.Segments() {
		fmt.Fprintf(out, "(%d, %d) -> (%d, %d)\n", s.P.X, s.P.Y, s.Q.X, s.Q.Y)
	}
	fmt.Fprintf(out, "count = %d\n", len(fc.Segments()))

	return 0
}

func readPoints(path string) ([]geometry.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("collinear driver: empty input")
	}

	var n int
	if _, err := fmt.Sscanf(scanner.Text(), "%d", &n); err != nil {
		return nil, fmt.Errorf("collinear driver: bad count line: %w", err)
	}

	points := make([]geometry.Point, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("collinear driver: expected %d points, got %d", n, i)
		}

		var x, y int
		if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &x, &y); err != nil {
			return nil, fmt.Errorf("collinear driver: bad point line %q: %w", scanner.Text(), err)
		}

		points = append(points, geometry.Point{X: x, Y: y})
	}

	return points, scanner.Err()
}
