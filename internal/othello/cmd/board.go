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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ut-code/othello-revamp/pkg/othello"
)

// readBoard decodes the board in the given file, or in the standard input
// if the file is "-", using the size from the --size flag.
func readBoard(cmd *cobra.Command, file string) (*othello.Board, error) {
	size, err := cmd.Flags().GetInt("size")
	if err != nil {
		return nil, err
	}

	if err := validateSize(size); err != nil {
		return nil, err
	}

	var data []byte
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}

	if err != nil {
		return nil, err
	}

	return othello.Decode(string(data), size)
}

func validateSize(size int) error {
	if size < 2 || size%2 != 0 || size >= othello.MaxSize {
		return fmt.Errorf("invalid board size %d: must be even and in [2, %d)", size, othello.MaxSize)
	}

	return nil
}

// writeBoard prints the board in the format readBoard accepts.
func writeBoard(cmd *cobra.Command, board *othello.Board) {
	fmt.Fprint(cmd.OutOrStdout(), strings.TrimPrefix(board.Encode(), "\n"))
}

// boardArgs parses the board and piece arguments shared by several
// commands.
func boardArgs(cmd *cobra.Command, args []string) (*othello.Board, othello.Piece, error) {
	board, err := readBoard(cmd, args[0])
	if err != nil {
		return nil, othello.Black, err
	}

	piece, err := othello.ParsePiece(args[1])
	if err != nil {
		return nil, othello.Black, err
	}

	return board, piece, nil
}
