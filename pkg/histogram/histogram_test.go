package histogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean_SingleBucket(t *testing.T) {
	res, err := Mean(Distribution{5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Observations)
	assert.Equal(t, int64(0), res.WeightedSum)
	assert.Equal(t, 0.0, res.Mean)
}

func TestMean_TwoValues(t *testing.T) {
	res, err := Mean(Distribution{0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Observations)
	assert.Equal(t, int64(3), res.WeightedSum)
	assert.Equal(t, 1.5, res.Mean)
}

func TestMean_SampleData(t *testing.T) {
	res, err := Mean(Distribution{0, 615, 205, 290})
	require.NoError(t, err)
	assert.Equal(t, int64(1110), res.Observations)
	assert.Equal(t, int64(1895), res.WeightedSum)
	assert.InDelta(t, 1.7072, res.Mean, 0.0001)
}

func TestMean_Empty(t *testing.T) {
	_, err := Mean(Distribution{})
	assert.ErrorIs(t, err, ErrEmptyDistribution)

	_, err = Mean(nil)
	assert.ErrorIs(t, err, ErrEmptyDistribution)
}

func TestMean_AllZero(t *testing.T) {
	_, err := Mean(Distribution{0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrEmptyDistribution)
}

func TestMean_NegativeCount(t *testing.T) {
	_, err := Mean(Distribution{3, -1, 2})
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestMean_Idempotent(t *testing.T) {
	d := Distribution{0, 615, 205, 290}

	r1, err := Mean(d)
	require.NoError(t, err)
	r2, err := Mean(d)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
}

func TestMean_ScaleInvariant(t *testing.T) {
	d := Distribution{0, 615, 205, 290}

	scaled, err := d.Scale(7)
	require.NoError(t, err)

	r1, err := Mean(d)
	require.NoError(t, err)
	r2, err := Mean(scaled)
	require.NoError(t, err)

	assert.Equal(t, r1.Mean, r2.Mean)
	assert.Equal(t, r1.Observations*7, r2.Observations)
	assert.Equal(t, r1.WeightedSum*7, r2.WeightedSum)
}

func TestScale_Negative(t *testing.T) {
	_, err := Distribution{1, 2}.Scale(-1)
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestObserve(t *testing.T) {
	d := New(0)

	require.NoError(t, d.Observe(3))
	require.NoError(t, d.Observe(3))
	require.NoError(t, d.Observe(1))
	assert.Len(t, d, minBuckets)
	assert.Equal(t, int64(2), d[3])
	assert.Equal(t, int64(1), d[1])

	// past the end, grows geometrically
	require.NoError(t, d.Observe(40))
	assert.Len(t, d, 64)
	assert.Equal(t, int64(1), d[40])

	res, err := Mean(d)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Observations)
	assert.Equal(t, int64(47), res.WeightedSum)
}

func TestObserve_NegativeValue(t *testing.T) {
	d := New(4)
	assert.Error(t, d.Observe(-1))
}

func TestTrim(t *testing.T) {
	d := Distribution{0, 1, 0, 2, 0, 0}
	assert.Equal(t, Distribution{0, 1, 0, 2}, d.Trim())

	assert.Empty(t, Distribution{0, 0}.Trim())
	assert.Empty(t, Distribution{}.Trim())
}

func TestMerge(t *testing.T) {
	a := Distribution{1, 2}
	b := Distribution{0, 1, 5}

	m := a.Merge(b)
	assert.Equal(t, Distribution{1, 3, 5}, m)

	// order does not matter
	assert.Equal(t, m, b.Merge(a))

	// merged totals are the sum of the parts
	ra, err := Mean(a)
	require.NoError(t, err)
	rb, err := Mean(b)
	require.NoError(t, err)
	rm, err := Mean(m)
	require.NoError(t, err)
	assert.Equal(t, ra.Observations+rb.Observations, rm.Observations)
	assert.Equal(t, ra.WeightedSum+rb.WeightedSum, rm.WeightedSum)
}
