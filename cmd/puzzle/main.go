// Command puzzle reads an n-puzzle board and prints whether it is
// solvable and, if so, every board along a shortest solution.
//
// Input file format: line 1 is n (2 <= n <= 127); each of the following
// n lines holds n whitespace-separated integers, 0 being the blank.
//
// Usage:
//
//	puzzle <path>
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoexercises/puzzle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: puzzle <path>")
		return 1
	}

	board, err := readBoard(args[0])
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return 1
	}

	s := puzzle.NewSolver(board, puzzle.Manhattan)

	fmt.Fprintf(out, "SOLVED = %t  MOVES = %d\n", s.IsSolvable(), s.Moves())
	for _, b := range s.Solution() {
		fmt.Fprint(out, b.String())
	}

	return 0
}

func readBoard(path string) (*puzzle.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("puzzle driver: empty input")
	}

	var n int
	if _, err := fmt.Sscanf(scanner.Text(), "%d", &n); err != nil {
		return nil, fmt.Errorf("puzzle driver: bad dimension line: %w", err)
	}

	tiles := make([][]int, n)
	for r := 0; r < n; r++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("puzzle driver: expected %d rows, got %d", n, r)
		}

		row := make([]int, n)
		fields := strings.Fields(scanner.Text())
		if len(fields) != n {
			return nil, fmt.Errorf("puzzle driver: row %d has %d values, want %d", r, len(fields), n)
		}

		for c, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("puzzle driver: bad tile %q: %w", field, err)
			}
			row[c] = v
		}

		tiles[r] = row
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return puzzle.NewBoard(tiles)
}
