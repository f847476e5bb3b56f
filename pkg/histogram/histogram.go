package histogram

import (
	"github.com/pkg/errors"
)

const minBuckets = 16

var (
	// ErrEmptyDistribution is returned when a distribution holds no
	// observations (empty or all-zero counts).
	ErrEmptyDistribution = errors.New("distribution contains no observations")

	// ErrNegativeCount is returned when any bucket holds a negative count.
	ErrNegativeCount = errors.New("negative observation count")
)

// Distribution is an ordered sequence of observation counts where each
// index doubles as the observed value: bucket i holds the number of
// observations of value i. Bucket width is always 1 and values are
// contiguous from 0, so a distribution is fully described by its counts.
type Distribution []int64

// MeanResult holds the totals and the derived weighted mean of a
// distribution.
type MeanResult struct {
	Observations int64   `json:"observations"`
	WeightedSum  int64   `json:"weighted_sum"`
	Mean         float64 `json:"mean"`
}

// New returns an empty distribution with the given number of buckets.
func New(buckets int) Distribution {
	if buckets < 0 {
		buckets = 0
	}
	return make(Distribution, buckets)
}

// Mean computes the weighted mean of the values implied by d: the sum of
// counts is the number of observations, the index-weighted sum treats each
// bucket index as the value of the observations recorded there, and the
// mean is their quotient. Both totals are exact. Negative counts and
// distributions with no observations fail; the mean is never NaN.
func Mean(d Distribution) (*MeanResult, error) {
	var total, weighted int64
	for i, c := range d {
		if c < 0 {
			return nil, errors.Wrapf(ErrNegativeCount, "bucket %d has count %d", i, c)
		}
		total += c
		weighted += int64(i) * c
	}

	if total == 0 {
		return nil, ErrEmptyDistribution
	}

	return &MeanResult{
		Observations: total,
		WeightedSum:  weighted,
		Mean:         float64(weighted) / float64(total),
	}, nil
}

// Observe records a single observation of value, growing the bucket
// sequence geometrically when value falls past the end.
func (d *Distribution) Observe(value int) error {
	if value < 0 {
		return errors.Errorf("cannot observe negative value: %d", value)
	}

	if value >= len(*d) {
		n := len(*d)
		if n < minBuckets {
			n = minBuckets
		}
		for value >= n {
			n *= 2
		}
		grown := make(Distribution, n)
		copy(grown, *d)
		*d = grown
	}

	(*d)[value]++
	return nil
}

// Trim returns d without its trailing zero buckets. Leading zeros are
// kept, they anchor the index-as-value encoding.
func (d Distribution) Trim() Distribution {
	end := len(d)
	for end > 0 && d[end-1] == 0 {
		end--
	}
	return d[:end]
}

// Merge returns the elementwise sum of d and other. The result is as
// long as the longer of the two.
func (d Distribution) Merge(other Distribution) Distribution {
	a, b := d, other
	if len(b) > len(a) {
		a, b = b, a
	}
	out := make(Distribution, len(a))
	copy(out, a)
	for i, c := range b {
		out[i] += c
	}
	return out
}

// Scale returns d with every count multiplied by k. Scaling leaves the
// weighted mean unchanged. A negative factor fails since it would
// produce negative counts.
func (d Distribution) Scale(k int64) (Distribution, error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "scale factor %d", k)
	}
	out := make(Distribution, len(d))
	for i, c := range d {
		out[i] = c * k
	}
	return out, nil
}
