/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/fentec-project/gosample/chart"
	"github.com/fentec-project/gosample/data"
	"github.com/fentec-project/gosample/experiment"
	"github.com/fentec-project/gosample/sample"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

type rootParams struct {
	seed      uint64
	key       string
	output    string
	width     float64
	height    float64
	logLevel  string
	logFormat string
}

var params rootParams

var logger = logrus.New()

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:   "distplot",
	Short: "Sample probability distributions and plot their histograms",
	Long: `Sample values from probability distributions and compare their histograms
with the theoretical probability densities.

Without --seed or --key every run draws fresh randomness from the operating
system, so the plots differ between runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureLogger(logger, params.logLevel, params.logFormat)
	},
}

func init() {
	RootCommand.PersistentFlags().Uint64Var(&params.seed, "seed", 0, "seed of the pseudo-random generator (0 uses system entropy)")
	RootCommand.PersistentFlags().StringVar(&params.key, "key", "", "hex encoded 32 byte key of the deterministic salsa20 generator, overrides --seed")
	RootCommand.PersistentFlags().StringVarP(&params.output, "output", "o", "", "path of the PNG image to write")
	RootCommand.PersistentFlags().Float64Var(&params.width, "width", 11, "image width in inches")
	RootCommand.PersistentFlags().Float64Var(&params.height, "height", 9, "image height in inches")
	RootCommand.PersistentFlags().StringVar(&params.logLevel, "log-level", "info", "set log level: debug, info, warn or error")
	RootCommand.PersistentFlags().StringVar(&params.logFormat, "log-format", "text", "set log format: text or json")
}

func configureLogger(l *logrus.Logger, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.SetLevel(lvl)

	switch format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	return nil
}

// newSource returns the Source selected by the flags: the keyed
// generator, the seeded one, or system entropy.
func newSource(p rootParams) (sample.Source, error) {
	switch {
	case p.key != "":
		raw, err := hex.DecodeString(p.key)
		if err != nil {
			return nil, errors.Wrap(err, "key is not hex encoded")
		}
		if len(raw) != 32 {
			return nil, errors.Errorf("key should be 32 bytes long, got %d", len(raw))
		}
		var key [32]byte
		copy(key[:], raw)
		return sample.NewKeyedSource(&key), nil
	case p.seed != 0:
		return sample.NewSeededSource(p.seed), nil
	default:
		return sample.NewCryptoSource(), nil
	}
}

func logResult(res *experiment.Result) {
	h := res.Histogram
	logger.WithFields(logrus.Fields{
		"experiment": res.Title,
		"samples":    h.Total,
		"dropped":    h.Dropped,
		"binned":     data.Vector(h.Counts()).Sum(),
		"bin_width":  h.BinWidth,
		"integral":   h.Integral(),
		"median":     res.Samples.Median(),
		"mean":       res.Samples.Mean(),
	}).Info("Experiment finished.")
}

// render plots the results side by side and saves the image.
func render(output string, results ...*experiment.Result) error {
	if params.output != "" {
		output = params.output
	}

	plots := make([]*plot.Plot, len(results))
	for i, res := range results {
		p, err := chart.NewPlot(res.Title, res.Histogram, res.Density)
		if err != nil {
			return err
		}
		plots[i] = p
	}

	err := chart.Save(output, vg.Length(params.width)*vg.Inch, vg.Length(params.height)*vg.Inch, plots...)
	if err != nil {
		return err
	}
	logger.WithField("path", output).Info("Plot saved.")

	return nil
}
