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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ut-code/othello-revamp/internal/othello/cmd/restart"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "othello",
		Short: "Play, analyse, and benchmark Othello positions",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Othello's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().IntP("size", "s", 8, "Size of the boards read or created")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(New())
	root.AddCommand(Place())
	root.AddCommand(Play())
	root.AddCommand(Predict())
	root.AddCommand(Score())
	root.AddCommand(Moves())
	root.AddCommand(Tournament())
	root.AddCommand(SPRT())
	root.AddCommand(Configs())
	root.AddCommand(Restart())

	return root
}

func Restart() *cobra.Command {
	cmd := cobra.Command{
		Use:   "restart",
		Short: "Restart a paused test by name",
	}

	cmd.AddCommand(restart.SPRT())
	return &cmd
}
