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

package predictor

import (
	"math"

	"github.com/ut-code/othello-revamp/pkg/othello"
)

// Score is a heuristic value of a position, from the point of view of the
// piece it was evaluated for. Larger is better.
type Score int64

const (
	// Win and Loss are the scores of positions where one of the colours has
	// been wiped off the board. They are far beyond any heuristic value but
	// still leave room for summing a few of them along a search line.
	Win  Score = math.MaxInt64 / 64
	Loss Score = -Win

	// MobilityWeight is the value of every legal move more than the opponent.
	MobilityWeight Score = 3

	// ImmobilizedBonus is awarded when only the opponent is left without a
	// legal move, and charged when only the evaluated piece is.
	ImmobilizedBonus Score = 100
)

// Positional weights of the cells, by their position relative to the
// nearest corner.
const (
	CornerWeight         Score = 20
	CornerAdjacentWeight Score = -5 // the rest of the 2x2 block in the corner
	EdgeWeight           Score = 3
	InnerRingWeight      Score = -3 // the second ring, minus the corner blocks
	InteriorWeight       Score = 0
)

// Evaluate statically scores the board for the given piece. The score is
// the sum of the piece's material, the mobility difference, the positional
// value of every occupied cell, and Win or Loss if a colour is wiped out.
func Evaluate(board *othello.Board, piece othello.Piece) Score {
	return material(board, piece) +
		mobility(board, piece) +
		terminal(board, piece) +
		positional(board, piece)
}

func material(board *othello.Board, piece othello.Piece) Score {
	return Score(board.Score(piece))
}

func mobility(board *othello.Board, piece othello.Piece) Score {
	own := Score(len(board.Placeable(piece)))
	opponent := Score(len(board.Placeable(piece.Flip())))

	score := MobilityWeight * (own - opponent)
	switch {
	case own == 0 && opponent > 0:
		score -= ImmobilizedBonus
	case opponent == 0 && own > 0:
		score += ImmobilizedBonus
	}

	return score
}

func terminal(board *othello.Board, piece othello.Piece) Score {
	switch {
	case board.Score(piece.Flip()) == 0:
		return Win
	case board.Score(piece) == 0:
		return Loss
	default:
		return 0
	}
}

func positional(board *othello.Board, piece othello.Piece) Score {
	own, opponent := piece.Cell(), piece.Flip().Cell()
	size := board.Size()

	var score Score
	board.Cells(func(at othello.Point, cell othello.Cell) {
		switch cell {
		case own:
			score += weight(at, size)
		case opponent:
			score -= weight(at, size)
		}
	})

	return score
}

// weight returns the positional weight of a cell. The board is folded into
// its top-left quadrant first, so only distances from the top-left corner
// need to be considered.
func weight(at othello.Point, size int) Score {
	x, y := fold(at.X, size), fold(at.Y, size)

	switch {
	case x == 0 && y == 0:
		return CornerWeight
	case x <= 1 && y <= 1:
		return CornerAdjacentWeight
	case x == 0 || y == 0:
		return EdgeWeight
	case x == 1 || y == 1:
		return InnerRingWeight
	default:
		return InteriorWeight
	}
}

func fold(coord, size int) int {
	if coord >= size/2 {
		return size - coord - 1
	}

	return coord
}
