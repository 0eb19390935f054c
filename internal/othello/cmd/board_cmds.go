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
	"encoding/json"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ut-code/othello-revamp/pkg/host"
	"github.com/ut-code/othello-revamp/pkg/othello"
)

// othello new
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Print the opening position",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`new prints the opening position of a board of the size
			given by --size. Every command reading boards accepts its
			output, with '.' for empty cells, 'b' for black pieces,
			and 'w' for white pieces.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := cmd.Flags().GetInt("size")
			if err != nil {
				return err
			}

			if err := validateSize(size); err != nil {
				return err
			}

			writeBoard(cmd, host.NewBoard(size))
			return nil
		},
	}
}

// othello place
func Place() *cobra.Command {
	return &cobra.Command{
		Use:   "place { board-file | - } piece x,y",
		Short: "Place a piece and print the resulting board",
		Args:  cobra.ExactArgs(3),
		Long: heredoc.Doc(`place puts a piece of the given colour on the board read
			from the file, or from the standard input if the file is
			'-', and prints the resulting board. The point is given as
			x,y counted from the top left corner.

			The placement fails if the point is outside the board, if
			it is already occupied, or if no piece would be flipped.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, piece, err := boardArgs(cmd, args)
			if err != nil {
				return err
			}

			at, err := othello.ParsePoint(args[2])
			if err != nil {
				return err
			}

			next, err := host.PlaceAt(board, piece, at)
			if err != nil {
				return err
			}

			writeBoard(cmd, next)
			return nil
		},
	}
}

// othello play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play { board-file | - } piece",
		Short: "Let the AI move and print the resulting board",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`play lets the AI move for the given piece and prints the
			resulting board. The board is printed unchanged if the
			piece has no legal move.

			The strength is the search depth of the AI, from 0 up to
			10. Higher strengths play better but take much longer.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, piece, err := boardArgs(cmd, args)
			if err != nil {
				return err
			}

			strength, err := cmd.Flags().GetInt("strength")
			if err != nil {
				return err
			}

			stop := startSpinner(cmd)
			next := host.GenerateAIPlay(board, piece, strength)
			stop()

			writeBoard(cmd, next)
			return nil
		},
	}

	cmd.Flags().IntP("strength", "S", 3, "Strength of the AI")
	cmd.Flags().BoolP("quiet", "q", false, "Don't show a spinner while searching")
	return cmd
}

// othello score
func Score() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score { board-file | - }",
		Short: "Count the pieces of both players",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := readBoard(cmd, args[0])
			if err != nil {
				return err
			}

			scores := host.Score(board)
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(scores)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "black: %d\nwhite: %d\n", scores.Black, scores.White)
			if board.IsOver() {
				logrus.Info("The game is over")
			}

			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the scores as json")
	return cmd
}

// othello moves
func Moves() *cobra.Command {
	return &cobra.Command{
		Use:   "moves { board-file | - } piece",
		Short: "List the legal moves of a piece",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`moves prints every point the given piece can be placed
			at, one per line, scanning the board column by column.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, piece, err := boardArgs(cmd, args)
			if err != nil {
				return err
			}

			for _, at := range board.Placeable(piece) {
				fmt.Fprintln(cmd.OutOrStdout(), at)
			}

			logrus.WithField("count", host.PlaceableCount(board, piece)).Debug("Listed legal moves")
			return nil
		},
	}
}
