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
	"github.com/fentec-project/gosample/experiment"
	"github.com/fentec-project/gosample/sample"
	"github.com/spf13/cobra"
)

func init() {
	var samples int
	var maxAttempts int

	var gaussCommand = &cobra.Command{
		Use:   "gauss",
		Short: "Plot the histograms of hit-and-miss and CLT Gaussian samples",
		Long: `Sample the standard Normal distribution twice, with the hit-and-miss method
and as sums of 12 uniform values (central limit theorem), and plot both
normalized histograms against the Normal density side by side.

The hit-and-miss sampler gives up after --max-attempts rejected candidates
for a single value; 0 lets it loop until a candidate is accepted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := newSource(params)
			if err != nil {
				return err
			}

			hitMiss, err := experiment.GaussianHitMiss(src, samples, maxAttempts)
			if err != nil {
				return err
			}
			logResult(hitMiss)

			clt, err := experiment.GaussianCLT(src, samples)
			if err != nil {
				return err
			}
			logResult(clt)

			return render("gauss.png", hitMiss, clt)
		},
	}

	gaussCommand.Flags().IntVarP(&samples, "samples", "n", experiment.GaussianSamples, "number of samples per method")
	gaussCommand.Flags().IntVar(&maxAttempts, "max-attempts", sample.DefaultMaxAttempts, "maximum number of hit-and-miss candidates per sample (0 for no limit)")
	RootCommand.AddCommand(gaussCommand)
}
