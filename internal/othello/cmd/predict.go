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
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/ut-code/othello-revamp/pkg/host"
	"github.com/ut-code/othello-revamp/pkg/predictor"
)

const SPIN = 31

// startSpinner shows a spinner on the standard error while the AI is
// thinking. The returned function stops it.
func startSpinner(cmd *cobra.Command) func() {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Thinking..."
	s.Start()
	return s.Stop
}

// othello predict
func Predict() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict { board-file | - } piece",
		Short: "Suggest a move for a piece",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`predict searches the board for the best move of the given
			piece and prints it as x,y, or 'pass' if the piece has no
			legal move.

			Every layer of the search keeps only the --breadth best
			moves and looks --depth layers ahead. With --rank all the
			kept moves are printed with their scores, best first.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, piece, err := boardArgs(cmd, args)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			depth, _ := flags.GetInt("depth")
			breadth, _ := flags.GetInt("breadth")
			workers, _ := flags.GetInt("workers")
			rank, _ := flags.GetBool("rank")

			if depth < 0 || depth > predictor.MaxDepth {
				return fmt.Errorf("predict: depth %d is not in [0, %d]", depth, predictor.MaxDepth)
			}

			if breadth < 1 {
				return fmt.Errorf("predict: breadth %d is less than 1", breadth)
			}

			search := predictor.Predictor{
				Depth:   depth,
				Breadth: breadth,
				Workers: workers,
			}

			stop := startSpinner(cmd)
			candidates := search.Rank(board, piece)
			stop()

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "pass")
				return nil
			}

			if !rank {
				fmt.Fprintln(out, candidates[0].Point)
				return nil
			}

			for _, candidate := range candidates {
				fmt.Fprintf(out, "%-7s %d\n", candidate.Point, candidate.Score)
			}

			return nil
		},
	}

	cmd.Flags().IntP("depth", "d", 3, "Number of layers to look ahead")
	cmd.Flags().IntP("breadth", "b", host.DefaultBreadth, "Number of moves kept at every layer")
	cmd.Flags().IntP("workers", "w", runtime.NumCPU(), "Number of goroutines to search on")
	cmd.Flags().BoolP("rank", "r", false, "Print every kept move with its score")
	cmd.Flags().BoolP("quiet", "q", false, "Don't show a spinner while searching")
	return cmd
}
