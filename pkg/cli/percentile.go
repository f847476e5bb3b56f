package cli

import (
	"github.com/kmills/hstat/pkg/histogram"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var (
	percentileValueFlag = &cli.Float64Flag{
		Name:    "p",
		Aliases: []string{"percentile"},
		Usage:   "Percentile to compute [0-100]",
		Value:   90,
	}

	percentileCmd = &cli.Command{
		Name:      "percentile",
		Aliases:   []string{"p"},
		Usage:     "Compute a percentile of a distribution",
		ArgsUsage: "<count>...",
		UsageText: `hstat percentile --p 99 0 615 205 290`,
		Action:    cmdPercentile,
		Flags: []cli.Flag{
			percentileValueFlag,
		},
	}
)

type percentileResult struct {
	Percentile float64 `json:"percentile"`
	Value      int     `json:"value"`
}

func cmdPercentile(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	d, err := parseCounts(c)
	if err != nil {
		return err
	}

	p := c.Float64(percentileValueFlag.Name)
	v, err := histogram.Percentile(d, p)
	if err != nil {
		if errors.Is(err, histogram.ErrEmptyDistribution) {
			return errors.New("no data: distribution contains no observations")
		}
		return errors.Wrap(err, "failed to compute percentile")
	}

	return encode(&percentileResult{Percentile: p, Value: v})
}
