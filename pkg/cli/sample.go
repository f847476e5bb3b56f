package cli

import (
	"sync"

	"github.com/kmills/hstat/pkg/histogram"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// Frequency histograms captured from a collaborative-editing trace:
// items per transaction, runs per merge, and patch sizes in bytes.
// Bucket index is the value, count is how often it was observed.
// Bucket 0 is an unused sentinel in all three.
var sampleDistributions = map[string]histogram.Distribution{
	"items_per_txn": {
		0, 615, 205, 290, 121, 56, 51, 32, 16, 9,
		9, 5, 4, 7, 2, 1, 0, 2, 1, 1,
	},
	"runs_per_merge": {
		0, 1390, 402, 161, 86, 51, 29, 17, 12, 7,
		5, 2, 3, 0, 1, 1,
	},
	"patch_size_bytes": {
		0, 202, 488, 703, 511, 322, 207, 140, 90, 55,
		34, 19, 12, 8, 5, 3, 2, 1, 1, 0,
		1,
	},
}

var sampleCmd = &cli.Command{
	Name:    "sample",
	Aliases: []string{"x"},
	Usage:   "Summarize the built-in sample distributions",
	Action:  cmdSample,
}

// cmdSample summarizes each sample on its own goroutine. Summaries are
// independent reads over immutable data, only the result map is shared.
func cmdSample(c *cli.Context) error {
	out := make(map[string]*histogram.Summary, len(sampleDistributions))

	var mu sync.Mutex
	var g errgroup.Group
	for sname, d := range sampleDistributions {
		sname, d := sname, d
		g.Go(func() error {
			s, err := histogram.Summarize(d)
			if err != nil {
				return errors.Wrapf(err, "failed to summarize sample: %s", sname)
			}
			mu.Lock()
			out[sname] = s
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return encode(out)
}
