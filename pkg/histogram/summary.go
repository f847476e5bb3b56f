package histogram

import (
	"math"

	"github.com/pkg/errors"
)

// Summary holds descriptive statistics for a distribution, all derived
// from the index-as-value encoding.
type Summary struct {
	Observations int64   `json:"observations"`
	WeightedSum  int64   `json:"weighted_sum"`
	Mean         float64 `json:"mean"`
	Min          int     `json:"min"`
	Max          int     `json:"max"`
	Mode         int     `json:"mode"`
	Median       int     `json:"median"`
	P90          int     `json:"p90"`
	P99          int     `json:"p99"`
	StdDev       float64 `json:"stddev"`
}

// Summarize computes the full set of descriptive statistics for d.
// Min and Max are the lowest and highest observed values (first and last
// non-empty buckets), Mode is the value with the largest count (lowest
// value wins ties), and the quantiles are the smallest values at which
// the cumulative count reaches the requested share of observations.
// StdDev is the sample standard deviation of the reconstructed
// observations, computed from the count, sum, and sum-of-squares moments.
func Summarize(d Distribution) (*Summary, error) {
	res, err := Mean(d)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Observations: res.Observations,
		WeightedSum:  res.WeightedSum,
		Mean:         res.Mean,
		Min:          -1,
	}

	var sumSq float64
	var modeCount int64
	for i, c := range d {
		if c == 0 {
			continue
		}
		if s.Min < 0 {
			s.Min = i
		}
		s.Max = i
		if c > modeCount {
			s.Mode = i
			modeCount = c
		}
		sumSq += float64(i) * float64(i) * float64(c)
	}

	s.Median = quantile(d, 50, res.Observations)
	s.P90 = quantile(d, 90, res.Observations)
	s.P99 = quantile(d, 99, res.Observations)

	if res.Observations > 1 {
		n := float64(res.Observations)
		variance := (sumSq - n*res.Mean*res.Mean) / (n - 1)
		if variance > 0 {
			s.StdDev = math.Sqrt(variance)
		}
	}

	return s, nil
}

// Percentile returns the smallest observed value at which the cumulative
// count reaches p percent of all observations.
func Percentile(d Distribution, p float64) (int, error) {
	if p < 0 || p > 100 {
		return 0, errors.Errorf("percentile out of range [0,100]: %v", p)
	}

	var total int64
	for i, c := range d {
		if c < 0 {
			return 0, errors.Wrapf(ErrNegativeCount, "bucket %d has count %d", i, c)
		}
		total += c
	}
	if total == 0 {
		return 0, ErrEmptyDistribution
	}

	return quantile(d, p, total), nil
}

// quantile walks the cumulative counts until the threshold is crossed.
// Callers must have validated d and computed its total.
func quantile(d Distribution, p float64, total int64) int {
	threshold := p / 100 * float64(total)
	var cum int64
	for i, c := range d {
		cum += c
		if cum > 0 && float64(cum) >= threshold {
			return i
		}
	}
	return len(d) - 1
}
