package cli

import (
	"log/slog"
	"strconv"

	"github.com/kmills/hstat/pkg/histogram"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var (
	meanCmd = &cli.Command{
		Name:      "mean",
		Aliases:   []string{"m"},
		Usage:     "Compute the weighted mean of a distribution",
		ArgsUsage: "<count>...",
		UsageText: `hstat mean 0 615 205 290    # counts per bucket, bucket index is the value
   hstat --format yaml mean 0 1 1`,
		Action: cmdMean,
	}
)

// parseCounts turns the positional command-line arguments into a
// distribution. Input validation beyond integer syntax (negative counts,
// no observations) belongs to the histogram package.
func parseCounts(c *cli.Context) (histogram.Distribution, error) {
	args := c.Args().Slice()
	d := make(histogram.Distribution, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid count: %q (counts must be integers)", a)
		}
		d = append(d, v)
	}
	return d, nil
}

func cmdMean(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	d, err := parseCounts(c)
	if err != nil {
		return err
	}

	res, err := histogram.Mean(d)
	if err != nil {
		if errors.Is(err, histogram.ErrEmptyDistribution) {
			return errors.New("no data: distribution contains no observations")
		}
		return errors.Wrap(err, "failed to compute mean")
	}

	slog.Debug("computed mean", "buckets", len(d), "observations", res.Observations)
	return encode(res)
}
