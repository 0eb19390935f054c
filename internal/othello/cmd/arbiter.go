// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ut-code/othello-revamp/pkg/common"
	"github.com/ut-code/othello-revamp/pkg/eve/sprt"
	"github.com/ut-code/othello-revamp/pkg/eve/tournament"
)

// othello tournament
func Tournament() *cobra.Command {
	return &cobra.Command{
		Use:   "tournament { config-file | name }",
		Short: "Run a tournament between different AI configurations",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`tournament plays games between the players listed in the
			given yaml config and reports their elo differences. A
			config which is not a file is looked up by name in the
			tour directory of the othello config directory.

			Every encounter is played as pairs of games from the same
			opening, with the players swapping colours.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			var config tournament.Config
			if _, err := common.LoadConfig("tour", args[0], &config); err != nil {
				return err
			}

			tour, err := tournament.NewTournament(config)
			if err != nil {
				return err
			}

			tour.Output = cmd.OutOrStdout()
			return tour.Start()
		},
	}
}

// othello sprt
func SPRT() *cobra.Command {
	return &cobra.Command{
		Use:   "sprt { config-file | name }",
		Short: "Run a Sequential Probability Ratio Test between two AI configurations",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`sprt plays game pairs between the two players listed in the
			given yaml config until either elo hypothesis is accepted.
			A config which is not a file is looked up by name in the
			sprt directory of the othello config directory.

			The state of the test is saved after every report, and a
			stopped test can be continued with 'othello restart sprt'.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			var config sprt.Config
			file, err := common.LoadConfig("sprt", args[0], &config)
			if err != nil {
				return err
			}

			if config.Name == "" {
				config.Name = common.Name(file)
			}

			test, err := sprt.NewTournament(config)
			if err != nil {
				return err
			}

			test.Output = cmd.OutOrStdout()
			_, err = test.Start()
			return err
		},
	}
}
