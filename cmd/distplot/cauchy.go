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
	"github.com/spf13/cobra"
)

func init() {
	var samples int

	var cauchyCommand = &cobra.Command{
		Use:   "cauchy",
		Short: "Plot the histogram of Cauchy samples",
		Long: `Sample the standard Cauchy distribution by the inverse transform method and
plot the normalized histogram over [-10, 10) against the Cauchy density.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := newSource(params)
			if err != nil {
				return err
			}

			res, err := experiment.Cauchy(src, samples)
			if err != nil {
				return err
			}
			logResult(res)

			return render("cauchy.png", res)
		},
	}

	cauchyCommand.Flags().IntVarP(&samples, "samples", "n", experiment.CauchySamples, "number of samples")
	RootCommand.AddCommand(cauchyCommand)
}
