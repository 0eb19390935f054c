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

package othello

import (
	"fmt"
	"strings"
)

// Piece is one of the two players. A Piece is never empty, use Cell for
// the contents of a square.
type Piece uint8

const (
	Black Piece = iota
	White
)

// PieceN is the number of players.
const PieceN = 2

// ParsePiece parses "b", "black", "w", or "white", ignoring case.
func ParsePiece(str string) (Piece, error) {
	switch strings.ToLower(str) {
	case "b", "black":
		return Black, nil
	case "w", "white":
		return White, nil
	default:
		return Black, fmt.Errorf("parse piece: unknown piece %q", str)
	}
}

// Flip returns the opponent of the piece.
func (piece Piece) Flip() Piece {
	return piece ^ 1
}

// Cell converts the Piece into the Cell holding it.
func (piece Piece) Cell() Cell {
	switch piece {
	case Black:
		return CellBlack
	default:
		return CellWhite
	}
}

func (piece Piece) String() string {
	switch piece {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "?"
	}
}

// Cell is the content of a single square of the Board.
type Cell uint8

const (
	Empty Cell = iota
	CellBlack
	CellWhite
)

// Flip swaps the colour of an occupied Cell. Empty stays Empty.
func (cell Cell) Flip() Cell {
	switch cell {
	case CellBlack:
		return CellWhite
	case CellWhite:
		return CellBlack
	default:
		return Empty
	}
}

// Piece returns the Piece occupying the Cell, or false if the Cell is Empty.
func (cell Cell) Piece() (Piece, bool) {
	switch cell {
	case CellBlack:
		return Black, true
	case CellWhite:
		return White, true
	default:
		return Black, false
	}
}

func (cell Cell) String() string {
	switch cell {
	case CellBlack:
		return "b"
	case CellWhite:
		return "w"
	default:
		return "."
	}
}
