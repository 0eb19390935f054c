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

package restart

import (
	"github.com/spf13/cobra"

	"github.com/ut-code/othello-revamp/pkg/common"
	"github.com/ut-code/othello-revamp/pkg/eve/sprt"
)

func SPRT() *cobra.Command {
	return &cobra.Command{
		Use:   "sprt test-name",
		Short: "Restart a Sequential Probability Ratio Test",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var config sprt.Config
			if _, err := common.LoadConfig("sprt", common.PausedFile("sprt", args[0]), &config); err != nil {
				return err
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
