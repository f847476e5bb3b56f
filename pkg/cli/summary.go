package cli

import (
	"github.com/kmills/hstat/pkg/histogram"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var (
	trimFlag = &cli.BoolFlag{
		Name:  "trim",
		Usage: "Drop trailing empty buckets before summarizing",
	}

	summaryCmd = &cli.Command{
		Name:      "summary",
		Aliases:   []string{"s"},
		Usage:     "Compute descriptive statistics of a distribution",
		ArgsUsage: "<count>...",
		UsageText: `hstat summary 0 615 205 290
   hstat summary --trim 0 5 3 0 0`,
		Action: cmdSummary,
		Flags: []cli.Flag{
			trimFlag,
		},
	}
)

func cmdSummary(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	d, err := parseCounts(c)
	if err != nil {
		return err
	}
	if c.Bool(trimFlag.Name) {
		d = d.Trim()
	}

	s, err := histogram.Summarize(d)
	if err != nil {
		if errors.Is(err, histogram.ErrEmptyDistribution) {
			return errors.New("no data: distribution contains no observations")
		}
		return errors.Wrap(err, "failed to summarize distribution")
	}

	return encode(s)
}
