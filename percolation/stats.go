package percolation

import "math"

// Stats runs T independent Monte-Carlo percolation trials on an n-by-n
// grid and reports the estimated percolation threshold's mean, sample
// standard deviation, and 95% confidence interval.
type Stats struct {
	n, trials  int
	thresholds []float64

	mean, stddev      float64
	confLow, confHigh float64
}

// NewStats runs T trials on an n-by-n grid, drawing site coordinates
// from rng, and returns the resulting statistics. Returns ErrInvalidSize
// or ErrInvalidTrials for n <= 0 or trials <= 0.
func NewStats(n, trials int, rng RNG) (*Stats, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	if trials <= 0 {
		return nil, ErrInvalidTrials
	}

	s := &Stats{n: n, trials: trials, thresholds: make([]float64, trials)}

	for t := 0; t < trials; t++ {
		s.thresholds[t] = runTrial(n, rng)
	}

	s.computeStats()

	return s, nil
}

// runTrial opens uniformly random sites, redrawing already-open ones,
// until the grid percolates, then returns the fraction of open sites at
// that instant.
func runTrial(n int, rng RNG) float64 {
	grid, err := New(n)
	if err != nil {
		panic(err) // n already validated by NewStats
	}

	for !grid.Percolates() {
		row := rng.UniformInt(1, n)
		col := rng.UniformInt(1, n)
		if grid.IsOpen(row, col) {
			continue
		}
		_ = grid.Open(row, col)
	}

	return float64(grid.NumberOfOpenSites()) / float64(n*n)
}

func (s *Stats) computeStats() {
	var sum float64
	for _, x := range s.thresholds {
		sum += x
	}
	s.mean = sum / float64(s.trials)

	if s.trials == 1 {
		s.stddev = 0
	} else {
		var sumSq float64
		for _, x := range s.thresholds {
			d := x - s.mean
			sumSq += d * d
		}
		s.stddev = math.Sqrt(sumSq / float64(s.trials-1))
	}

	margin := 1.96 * s.stddev / math.Sqrt(float64(s.trials))
	s.confLow = s.mean - margin
	s.confHigh = s.mean + margin
}

// Mean returns the sample mean of the recorded thresholds.
func (s *Stats) Mean() float64 { return s.mean }

// StdDev returns the sample standard deviation (divided by T-1), or 0
// when T == 1.
func (s *Stats) StdDev() float64 { return s.stddev }

// ConfidenceInterval returns the 95% confidence interval [lo, hi].
func (s *Stats) ConfidenceInterval() (lo, hi float64) {
	return s.confLow, s.confHigh
}
