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

package match

import (
	"fmt"

	"github.com/ut-code/othello-revamp/pkg/othello"
)

// Outcome is the state of an adjudicated game.
type Outcome uint8

const (
	Ongoing Outcome = iota
	BlackWins
	WhiteWins
	Drawn
)

// Oracle keeps track of a game's position and decides when it is over.
// A side without a legal move passes automatically.
type Oracle struct {
	board *othello.Board
	turn  othello.Piece

	plies, passes int
}

// Initialize sets up the oracle with a copy of the given position and the
// side to move. If that side cannot move, it passes right away.
func (oracle *Oracle) Initialize(board *othello.Board, turn othello.Piece) {
	oracle.board = board.Clone()
	oracle.turn = turn
	oracle.plies, oracle.passes = 0, 0

	oracle.pass()
}

// SideToMove returns the piece which has to move next.
func (oracle *Oracle) SideToMove() othello.Piece {
	return oracle.turn
}

// Board returns a copy of the current position.
func (oracle *Oracle) Board() *othello.Board {
	return oracle.board.Clone()
}

// Plies returns the number of moves played, not counting passes.
func (oracle *Oracle) Plies() int {
	return oracle.plies
}

// Passes returns the number of turns skipped for lack of a legal move.
func (oracle *Oracle) Passes() int {
	return oracle.passes
}

// MakeMove places a piece of the side to move at the given point and hands
// the turn over. The position is unchanged if the move is illegal.
func (oracle *Oracle) MakeMove(at othello.Point) error {
	if _, err := oracle.board.Place(at, oracle.turn); err != nil {
		return fmt.Errorf("oracle: %w", err)
	}

	oracle.plies++
	oracle.turn = oracle.turn.Flip()
	oracle.pass()
	return nil
}

// pass hands the turn back if the side to move is stuck while its
// opponent is not.
func (oracle *Oracle) pass() {
	if !oracle.board.HasMoves(oracle.turn) && oracle.board.HasMoves(oracle.turn.Flip()) {
		oracle.turn = oracle.turn.Flip()
		oracle.passes++
	}
}

// GameResult returns the outcome of the game along with the reason for it.
// The game is Ongoing as long as either side has a legal move.
func (oracle *Oracle) GameResult() (Outcome, string) {
	if !oracle.board.IsOver() {
		return Ongoing, ""
	}

	black := oracle.board.Score(othello.Black)
	white := oracle.board.Score(othello.White)

	reason := "Disc Count"
	if black == 0 || white == 0 {
		reason = "Wipeout"
	}

	switch {
	case black > white:
		return BlackWins, reason
	case white > black:
		return WhiteWins, reason
	default:
		return Drawn, reason
	}
}
